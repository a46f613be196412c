package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "tga_"

const (
	TABLE_CLIENT          = TableName("client")
	TABLE_JOURNEY_PAGE    = TableName("journey_page")
	TABLE_CONTENT_VERSION = TableName("content_version")
	TABLE_JOURNEY_OUTCOME = TableName("journey_outcome")
	TABLE_JOURNEY_EVENT   = TableName("journey_event")
	TABLE_ACCESS_TOKEN    = TableName("access_token")
	TABLE_USER            = TableName("user")
)
