package types

import (
	"errors"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/security"
)

const (
	DEFAULT_ACCESS_TOKEN_VERSION = "v1"
)

type AccessToken struct {
	ID        int64  `json:"id" db:"id"`           // 主键，自增ID
	Appid     string `json:"appid" db:"appid"`     // 租户id
	UserID    string `json:"user_id" db:"user_id"` // token 所属的用户
	Token     string `json:"token" db:"token"`
	Version   string `json:"version" db:"version"` // token存储格式的版本号
	Info      string `json:"info" db:"info"`       // token 用途描述
	CreatedAt int64  `json:"created_at" db:"created_at"`
	ExpiresAt int64  `json:"expires_at" db:"expires_at"`
}

func (s *AccessToken) TokenClaims() (security.TokenClaims, error) {
	if s.Version != "" && s.Version != DEFAULT_ACCESS_TOKEN_VERSION {
		return security.TokenClaims{}, errors.New("unkown access token version")
	}
	claim := security.NewTokenClaims(s.Appid, "tga", s.UserID, "admin", s.ExpiresAt)
	return claim, nil
}
