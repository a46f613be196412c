package v1

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	"github.com/ck123cabz/template-genius-activation-sub001/app/core/srv"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/errors"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/i18n"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/security"
)

type _userInfo struct {
	ctx  context.Context
	core *core.Core
	u    *security.TokenClaims
}

func (u *_userInfo) GetUserInfo() security.TokenClaims {
	return *u.u
}

func (u *_userInfo) Identification(roler srv.RoleObject, permission string) error {
	if err := u.core.Srv().RBAC().Check(u.GetUserInfo(), roler, permission); err != nil {
		return err
	}
	return nil
}

// 通过客户ID延迟获取该记录的创建者ID
func (u *_userInfo) lazyRolerFromClientID(appid, id string) *srv.LazyRoler {
	return srv.NewRolerWithLazyload(func() (string, error) {
		c, err := u.core.Store().ClientStore().GetClient(u.ctx, appid, id)
		if err != nil && err != sql.ErrNoRows {
			slog.Error("Failed to get record owner by client id", slog.String("error", err.Error()))
			return "", errors.New("_userInfo.RolerWithLazyload", i18n.ERROR_INTERNAL, err)
		}
		if c == nil {
			return "", nil
		}
		return c.Creator, nil
	})
}

func SetupUserInfo(ctx context.Context, core *core.Core) UserInfo {
	userInfo, ok := InjectTokenClaim(ctx)
	if !ok {
		slog.Error("Not found user in context", slog.String("component", "logic.v1.setupUserInfo"))
		userInfo = security.TokenClaims{}
	}
	return &_userInfo{
		ctx:  ctx,
		u:    &userInfo,
		core: core,
	}
}

type UserInfo interface {
	GetUserInfo() security.TokenClaims
	Identification(roler srv.RoleObject, permission string) error
	lazyRolerFromClientID(appid, id string) *srv.LazyRoler
}
