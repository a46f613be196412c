package types

const (
	JOURNEY_EVENT_VIEW        = "view"
	JOURNEY_EVENT_ACKNOWLEDGE = "acknowledge"
)

// JourneyEvent 公开访问路径上产生的行为事件，由队列异步落库
type JourneyEvent struct {
	ID        int64    `json:"id" db:"id"`
	Appid     string   `json:"appid" db:"appid"`
	ClientID  string   `json:"client_id" db:"client_id"`
	PageType  PageType `json:"page_type" db:"page_type"`
	Kind      string   `json:"kind" db:"kind"`
	CreatedAt int64    `json:"created_at" db:"created_at"`
}

// JourneyEventCount 按页面类型聚合的事件数
type JourneyEventCount struct {
	PageType PageType `json:"page_type" db:"page_type"`
	Kind     string   `json:"kind" db:"kind"`
	Total    int64    `json:"total" db:"total"`
}
