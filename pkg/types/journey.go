package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

type PageType string

const (
	PAGE_TYPE_ACTIVATION   PageType = "activation"
	PAGE_TYPE_AGREEMENT    PageType = "agreement"
	PAGE_TYPE_CONFIRMATION PageType = "confirmation"
	PAGE_TYPE_PROCESSING   PageType = "processing"
)

// JourneyPageOrder 旅程页面的固定顺序
var JourneyPageOrder = []PageType{
	PAGE_TYPE_ACTIVATION,
	PAGE_TYPE_AGREEMENT,
	PAGE_TYPE_CONFIRMATION,
	PAGE_TYPE_PROCESSING,
}

func StringToPageType(str string) PageType {
	switch strings.ToLower(str) {
	case string(PAGE_TYPE_ACTIVATION):
		return PAGE_TYPE_ACTIVATION
	case string(PAGE_TYPE_AGREEMENT):
		return PAGE_TYPE_AGREEMENT
	case string(PAGE_TYPE_CONFIRMATION):
		return PAGE_TYPE_CONFIRMATION
	case string(PAGE_TYPE_PROCESSING):
		return PAGE_TYPE_PROCESSING
	default:
		return ""
	}
}

// NextPageType 返回旅程中的下一个页面类型，最后一页返回空
func NextPageType(t PageType) PageType {
	for i, v := range JourneyPageOrder {
		if v == t && i+1 < len(JourneyPageOrder) {
			return JourneyPageOrder[i+1]
		}
	}
	return ""
}

// PageTypeOrder 返回页面在旅程中的序号，从 1 开始，未知类型返回 0
func PageTypeOrder(t PageType) int {
	for i, v := range JourneyPageOrder {
		if v == t {
			return i + 1
		}
	}
	return 0
}

// JourneyPage 客户旅程中的单个模板页面，每个客户每种类型只有一条记录
type JourneyPage struct {
	ID        string      `json:"id" db:"id"`
	Appid     string      `json:"appid" db:"appid"`
	ClientID  string      `json:"client_id" db:"client_id"`
	PageType  PageType    `json:"page_type" db:"page_type"`
	Title     string      `json:"title" db:"title"`
	Content   PageContent `json:"content" db:"content"`
	PageOrder int         `json:"page_order" db:"page_order"`
	UpdatedAt int64       `json:"updated_at" db:"updated_at"`
	CreatedAt int64       `json:"created_at" db:"created_at"`
}

// PageContent 页面内容，存储为 JSON 文档
type PageContent json.RawMessage

func (m PageContent) String() string {
	var str string
	if err := json.Unmarshal(m, &str); err == nil {
		return str
	}
	return string(m)
}

func (m PageContent) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return m, nil
}

func (m *PageContent) UnmarshalJSON(data []byte) error {
	*m = data
	return nil
}

// Scan implements the sql.Scanner interface.
func (a *PageContent) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		*a = PageContent(src)
		return nil
	case string:
		*a = PageContent(src)
		return nil
	case nil:
		return nil
	}

	return fmt.Errorf("pq: cannot convert %T to json.RawMessage", src)
}

// DefaultPageTitles 新建客户时四个页面的初始标题
var DefaultPageTitles = map[PageType]string{
	PAGE_TYPE_ACTIVATION:   "Activate Your Priority Access",
	PAGE_TYPE_AGREEMENT:    "Service Agreement",
	PAGE_TYPE_CONFIRMATION: "Payment Confirmation",
	PAGE_TYPE_PROCESSING:   "Processing Your Activation",
}

// DefaultPageTitlesCN 中文后台创建客户时使用的初始标题
var DefaultPageTitlesCN = map[PageType]string{
	PAGE_TYPE_ACTIVATION:   "激活您的优先通道",
	PAGE_TYPE_AGREEMENT:    "服务协议",
	PAGE_TYPE_CONFIRMATION: "支付确认",
	PAGE_TYPE_PROCESSING:   "激活处理中",
}

// DefaultPageContent 新建客户时页面的初始内容模板，标题块使用传入的标题
func DefaultPageContent(title string) PageContent {
	raw, _ := json.Marshal(map[string]any{
		"blocks": []map[string]any{
			{
				"type": "heading",
				"text": title,
			},
		},
	})
	return PageContent(raw)
}
