package types

import (
	sq "github.com/Masterminds/squirrel"
)

// ContentVersion 页面内容的历史快照，每个页面有且只有一条 is_current 记录
type ContentVersion struct {
	ID         string      `json:"id" db:"id"`
	Appid      string      `json:"appid" db:"appid"`
	ClientID   string      `json:"client_id" db:"client_id"`
	PageID     string      `json:"page_id" db:"page_id"`
	Version    int64       `json:"version" db:"version"`
	Title      string      `json:"title" db:"title"`
	Content    PageContent `json:"content" db:"content"`
	Hypothesis string      `json:"hypothesis" db:"hypothesis"` // 本次修改的预期效果
	EditorID   string      `json:"editor_id" db:"editor_id"`
	IsCurrent  bool        `json:"is_current" db:"is_current"`
	CreatedAt  int64       `json:"created_at" db:"created_at"`
}

type ListContentVersionOptions struct {
	Appid       string
	ClientID    string
	PageID      string
	OnlyCurrent bool
	// WithHypothesis 只返回填写了假设说明的版本
	WithHypothesis bool
}

func (opts ListContentVersionOptions) Apply(query *sq.SelectBuilder) {
	if opts.Appid != "" {
		*query = query.Where(sq.Eq{"appid": opts.Appid})
	}
	if opts.ClientID != "" {
		*query = query.Where(sq.Eq{"client_id": opts.ClientID})
	}
	if opts.PageID != "" {
		*query = query.Where(sq.Eq{"page_id": opts.PageID})
	}
	if opts.OnlyCurrent {
		*query = query.Where(sq.Eq{"is_current": true})
	}
	if opts.WithHypothesis {
		*query = query.Where(sq.NotEq{"hypothesis": ""})
	}
}
