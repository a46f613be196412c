package types

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	CLIENT_STATUS_PENDING   = "pending"
	CLIENT_STATUS_ACTIVATED = "activated"
)

// Client 后台管理的客户档案，token 为该客户访问旅程页面的唯一凭证
type Client struct {
	ID         string `json:"id" db:"id"`
	Appid      string `json:"appid" db:"appid"`
	Company    string `json:"company" db:"company"`
	Contact    string `json:"contact" db:"contact"`
	Email      string `json:"email" db:"email"`
	Position   string `json:"position" db:"position"`
	Salary     string `json:"salary" db:"salary"`
	Hypothesis string `json:"hypothesis" db:"hypothesis"` // 整个旅程的转化假设
	Token      string `json:"token" db:"token"`           // G#### 访问码
	Status     string `json:"status" db:"status"`
	Creator    string `json:"creator" db:"creator"` // 创建该档案的后台账号
	UpdatedAt  int64  `json:"updated_at" db:"updated_at"`
	CreatedAt  int64  `json:"created_at" db:"created_at"`
}

type UpdateClientArgs struct {
	Company    string `json:"company"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Salary     string `json:"salary"`
	Hypothesis string `json:"hypothesis"`
}

type ListClientOptions struct {
	ID       string
	Appid    string
	Status   string
	Token    string
	Keywords string
}

func (opts ListClientOptions) Apply(query *sq.SelectBuilder) {
	if opts.ID != "" {
		*query = query.Where(sq.Eq{"id": opts.ID})
	}
	if opts.Appid != "" {
		*query = query.Where(sq.Eq{"appid": opts.Appid})
	}
	if opts.Status != "" {
		*query = query.Where(sq.Eq{"status": opts.Status})
	}
	if opts.Token != "" {
		*query = query.Where(sq.Eq{"token": opts.Token})
	}
	if opts.Keywords != "" {
		like := "%" + opts.Keywords + "%"
		*query = query.Where(sq.Or{
			sq.ILike{"company": like},
			sq.ILike{"contact": like},
			sq.ILike{"email": like},
		})
	}
}
