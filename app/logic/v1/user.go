package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/errors"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/i18n"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/utils"
)

// logic for unlogin
type UserLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewUserLogic(ctx context.Context, core *core.Core) *UserLogic {
	l := &UserLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

func (l *UserLogic) Register(appid, name, email, password string) (string, error) {
	exist, err := l.core.Store().UserStore().GetByEmail(l.ctx, appid, email)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("UserLogic.Register.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}
	if exist != nil {
		return "", errors.New("UserLogic.Register.UserStore.GetByEmail.exist", i18n.ERROR_EMAIL_ALREADY_REGISTED, nil).Code(http.StatusBadRequest)
	}

	salt := utils.RandomStr(10)
	userID := utils.GenUniqIDStr()

	err = l.core.Store().UserStore().Create(l.ctx, types.User{
		ID:        userID,
		Appid:     appid,
		Name:      name,
		Email:     email,
		Avatar:    l.core.Cfg().Site.DefaultAvatar,
		Salt:      salt,
		Source:    "platform",
		Password:  utils.GenUserPassword(salt, password),
		UpdatedAt: time.Now().Unix(),
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		return "", errors.New("UserLogic.Register.UserStore.Create", i18n.ERROR_INTERNAL, err)
	}

	return userID, nil
}

func (l *UserLogic) Login(appid, email, password string) (string, error) {
	user, err := l.core.Store().UserStore().GetByEmail(l.ctx, appid, email)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("UserLogic.Login.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}

	if user == nil || user.Password != utils.GenUserPassword(user.Salt, password) {
		return "", errors.New("UserLogic.Login.Password.check", i18n.ERROR_INVALID_ACCOUNT, err).Code(http.StatusBadRequest)
	}

	accessToken := utils.MD5(user.ID + utils.GenRandomID())
	err = l.core.Store().AccessTokenStore().Create(l.ctx, types.AccessToken{
		UserID:    user.ID,
		Appid:     appid,
		Token:     accessToken,
		Version:   types.DEFAULT_ACCESS_TOKEN_VERSION,
		Info:      "login",
		ExpiresAt: time.Now().AddDate(0, 1, 0).Unix(),
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		return "", errors.New("UserLogic.Login.AccessTokenStore.Create", i18n.ERROR_INTERNAL, err)
	}

	return accessToken, nil
}

type UserBaseInfo struct {
	ID        string `json:"id" db:"id"`
	Appid     string `json:"appid" db:"appid"`
	Name      string `json:"name" db:"name"`
	Avatar    string `json:"avatar" db:"avatar"`
	Email     string `json:"email" db:"email"`
	UpdatedAt int64  `json:"updated_at" db:"updated_at"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

func (l *UserLogic) GetUser(appid, id string) (*UserBaseInfo, error) {
	user, err := l.core.Store().UserStore().GetUser(l.ctx, appid, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("UserLogic.GetUser.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}

	if user == nil {
		return nil, errors.New("UserLogic.GetUser.UserStore.GetUser.nil", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	return &UserBaseInfo{
		ID:        user.ID,
		Appid:     user.Appid,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Email:     user.Email,
		UpdatedAt: user.UpdatedAt,
		CreatedAt: user.CreatedAt,
	}, nil
}

type AuthedUserLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewAuthedUserLogic(ctx context.Context, core *core.Core) *AuthedUserLogic {
	l := &AuthedUserLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}

	return l
}

func (l *AuthedUserLogic) UpdateUserProfile(userName, email, avatar string) error {
	err := l.core.Store().UserStore().UpdateProfile(l.ctx, l.GetUserInfo().Appid, l.GetUserInfo().User, userName, email, avatar)
	if err != nil {
		return errors.New("AuthedUserLogic.UpdateUserProfile.UserStore.UpdateProfile", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
