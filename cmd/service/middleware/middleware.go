package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	"github.com/ck123cabz/template-genius-activation-sub001/app/core/srv"
	v1 "github.com/ck123cabz/template-genius-activation-sub001/app/logic/v1"
	"github.com/ck123cabz/template-genius-activation-sub001/app/response"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/errors"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/i18n"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/security"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/utils"
)

func I18n() gin.HandlerFunc {
	l := i18n.NewLocalizer(types.LANGUAGE_EN_KEY, types.LANGUAGE_CN_KEY)
	return response.ProvideResponseLocalizer(l)
}

// AcceptLanguage 目前服务端支持 en: English, zh-CN: 简体中文
func AcceptLanguage() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		lang := ctx.Request.Header.Get("Accept-Language")
		if lang == "" {
			ctx.Set(v1.LANGUAGE_KEY, types.LANGUAGE_EN_KEY)
			return
		}

		res := utils.ParseAcceptLanguage(lang)
		if len(res) == 0 {
			ctx.Set(v1.LANGUAGE_KEY, types.LANGUAGE_EN_KEY)
			return
		}

		ctx.Set(v1.LANGUAGE_KEY, lo.If(strings.Contains(res[0].Tag, "zh"), types.LANGUAGE_CN_KEY).Else(types.LANGUAGE_EN_KEY))
	}
}

const (
	ACCESS_TOKEN_HEADER_KEY = "X-Access-Token"
	AUTH_TOKEN_HEADER_KEY   = "X-Authorization"
	APPID_HEADER            = "X-Appid"
)

func Authorization(core *core.Core) gin.HandlerFunc {
	tracePrefix := "middleware.TryGetAccessToken"
	return func(ctx *gin.Context) {
		matched, err := checkAccessToken(ctx, core)
		if err != nil {
			response.APIError(ctx, errors.Trace(tracePrefix, err))
			return
		}

		if !matched {
			matched, err = checkAuthToken(ctx, core)
			if err != nil {
				response.APIError(ctx, errors.Trace(tracePrefix, err))
				return
			}
		}

		if !matched {
			response.APIError(ctx, errors.New(tracePrefix, i18n.ERROR_UNAUTHORIZED, err).Code(http.StatusUnauthorized))
		}
	}
}

func SetAppid(core *core.Core) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(v1.APPID_KEY, core.DefaultAppid())
	}
}

// checkAuthToken 校验外部签发的 JWT，未配置验签公钥时直接跳过。
// JWT 未携带角色声明时按只读角色处理。
func checkAuthToken(c *gin.Context, core *core.Core) (bool, error) {
	tokenValue := c.GetHeader(AUTH_TOKEN_HEADER_KEY)
	if tokenValue == "" {
		return false, nil
	}

	publicKey := core.Cfg().Security.JWTPublicKey
	if publicKey == "" {
		return false, nil
	}

	claims, err := security.VerifyToken(tokenValue, []byte(publicKey))
	if err != nil {
		return false, errors.New("checkAuthToken.VerifyToken", i18n.ERROR_UNAUTHORIZED, err).Code(http.StatusUnauthorized)
	}

	if claims.Fields == nil {
		claims.Fields = make(map[string]string)
	}
	if claims.GetRole() == "" {
		claims.Fields[security.ROLE_KEY] = srv.RoleViewer
	}
	c.Set(v1.TOKEN_CONTEXT_KEY, *claims)
	c.Set("user", claims.User)
	return true, nil
}

func checkAccessToken(c *gin.Context, core *core.Core) (bool, error) {
	tokenValue := c.GetHeader(ACCESS_TOKEN_HEADER_KEY)
	if tokenValue == "" {
		return false, nil
	}

	return ParseAccessToken(c, tokenValue, core)
}

func ParseAccessToken(c *gin.Context, tokenValue string, core *core.Core) (bool, error) {
	if tokenValue == "" {
		return false, nil
	}

	appid, exist := v1.InjectAppid(c)
	if !exist {
		appid = core.DefaultAppid()
	}

	token, err := v1.NewAuthLogic(c, core).GetAccessTokenDetail(appid, tokenValue)
	if err != nil {
		return false, errors.Trace("ParseAccessToken.GetAccessTokenDetail", err)
	}

	if token == nil || token.ExpiresAt < time.Now().Unix() {
		return false, errors.New("ParseAccessToken.token.check", i18n.ERROR_UNAUTHORIZED, fmt.Errorf("nil token")).Code(http.StatusUnauthorized)
	}

	user, err := core.Store().UserStore().GetUser(c, token.Appid, token.UserID)
	if err != nil {
		return false, errors.New("ParseAccessToken.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}

	claims := security.NewTokenClaims(user.Appid, types.DEFAULT_APPID, user.ID, "", token.ExpiresAt)
	claims.Fields[security.ROLE_KEY] = userGlobalRole(user)
	c.Set(v1.TOKEN_CONTEXT_KEY, claims)
	c.Set("user", user.ID)
	return true, nil
}

// 初始化创建的账号为管理员，其余注册用户为编辑
func userGlobalRole(user *types.User) string {
	if user.Source == "init" {
		return srv.RoleAdmin
	}
	return srv.RoleEditor
}

// VerifyPermission 校验当前用户角色是否具备指定权限
func VerifyPermission(core *core.Core, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := v1.InjectTokenClaim(c)
		if !exists {
			response.APIError(c, errors.New("middleware.VerifyPermission.GetToken", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized))
			c.Abort()
			return
		}

		if !core.Srv().RBAC().CheckPermission(claims.GetRole(), permission) {
			response.APIError(c, errors.New("middleware.VerifyPermission.CheckPermission", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden))
			c.Abort()
			return
		}

		c.Next()
	}
}

// VerifyAdminPermission 验证管理员权限
func VerifyAdminPermission(core *core.Core) gin.HandlerFunc {
	return VerifyPermission(core, srv.PermissionAdmin)
}

// ApiMetrics 记录接口耗时与非 2xx 响应计数
func ApiMetrics(core *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := core.Metrics().ApiResponseTimer(c.FullPath())
		c.Next()
		timer.ObserveDuration()

		if c.Writer.Status() >= http.StatusBadRequest {
			core.Metrics().ApiErrorInc(c.Request.Method, c.FullPath(), c.Writer.Status())
		}
	}
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, UPDATE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization, X-Access-Token, X-Appid")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if method == "OPTIONS" {
		c.AbortWithStatus(http.StatusNoContent)
	}
	c.Next()
}

type LimiterFunc func(key string, opts ...core.LimitOption) gin.HandlerFunc

func UseLimit(appCore *core.Core, operation string, genKeyFunc func(c *gin.Context) string, opts ...core.LimitOption) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !appCore.UseLimiter(c, genKeyFunc(c), operation, opts...).Allow() {
			response.APIError(c, errors.New("middleware.limiter", i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests))
		}
	}
}
