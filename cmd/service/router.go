package service

import (
	"github.com/gin-gonic/gin"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	"github.com/ck123cabz/template-genius-activation-sub001/app/core/srv"
	v1 "github.com/ck123cabz/template-genius-activation-sub001/app/logic/v1"
	"github.com/ck123cabz/template-genius-activation-sub001/app/response"
	"github.com/ck123cabz/template-genius-activation-sub001/cmd/service/handler"
	"github.com/ck123cabz/template-genius-activation-sub001/cmd/service/middleware"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func GetIPLimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string, opts ...core.LimitOption) gin.HandlerFunc {
		return middleware.UseLimit(appCore, key, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		}, opts...)
	}
}

func GetUserLimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string, opts ...core.LimitOption) gin.HandlerFunc {
		return middleware.UseLimit(appCore, key, func(c *gin.Context) string {
			token, _ := v1.InjectTokenClaim(c)
			return key + ":" + token.User
		}, opts...)
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)
	userLimit := GetUserLimitBuilder(s.Core)

	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.ApiMetrics(s.Core))
	s.Engine.Use(middleware.Cors)
	s.Engine.Use(middleware.SetAppid(s.Core))
	s.Engine.Use(middleware.AcceptLanguage())

	// 客户侧旅程入口，凭访问码访问，不走登录态
	activate := s.Engine.Group("/activate")
	{
		activate.GET("/:token/:page_type", ipLimit("activate_view"), s.ViewJourneyPage)
		activate.POST("/:token/:page_type/ack", ipLimit("activate_ack"), s.AcknowledgeJourneyPage)
	}

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.GET("/mode", func(c *gin.Context) {
			response.APISuccess(c, s.Core.Plugins.Name())
		})

		apiV1.POST("/login", ipLimit("login"), s.Login)
		apiV1.POST("/register", ipLimit("register"), s.Register)

		authed := apiV1.Group("")
		authed.Use(middleware.Authorization(s.Core))

		user := authed.Group("/user")
		{
			user.GET("/info", s.GetUser)
			user.PUT("/profile", userLimit("profile"), s.UpdateUserProfile)
			user.POST("/secret/token", s.CreateAccessToken)
			user.GET("/secret/tokens", s.GetUserAccessTokens)
			user.DELETE("/secret/tokens", s.DeleteAccessTokens)
			user.DELETE("/secret/tokens/all", s.ClearAccessTokens)
		}

		client := authed.Group("/client")
		{
			viewScope := client.Group("")
			{
				viewScope.Use(middleware.VerifyPermission(s.Core, srv.PermissionView))
				viewScope.GET("/list", s.ListClients)
				viewScope.GET("/:clientid", s.GetClient)
				viewScope.GET("/:clientid/journey/list", s.ListJourneyPages)
				viewScope.GET("/:clientid/event/list", s.ListJourneyEvents)
				viewScope.GET("/:clientid/journey/:page_type", s.GetJourneyPage)
				viewScope.GET("/:clientid/outcome", s.GetCurrentOutcome)
				viewScope.GET("/:clientid/outcome/list", s.ListOutcomes)
			}

			editScope := client.Group("")
			{
				editScope.Use(middleware.VerifyPermission(s.Core, srv.PermissionEdit))
				editScope.POST("", userLimit("modify_client"), s.CreateClient)
				editScope.PUT("/:clientid", userLimit("modify_client"), s.UpdateClient)
				editScope.POST("/:clientid/outcome", s.MarkOutcome)
			}

			client.DELETE("/:clientid", middleware.VerifyAdminPermission(s.Core), s.DeleteClient)
		}

		journey := authed.Group("/journey/page/:pageid")
		{
			journey.PUT("/content", middleware.VerifyPermission(s.Core, srv.PermissionEdit), userLimit("modify_content"), s.UpdateJourneyPageContent)
			journey.GET("/version/list", middleware.VerifyPermission(s.Core, srv.PermissionView), s.ListContentVersions)
			journey.GET("/version/current", middleware.VerifyPermission(s.Core, srv.PermissionView), s.GetCurrentContentVersion)
		}

		version := authed.Group("/journey/version/:versionid")
		{
			version.GET("", middleware.VerifyPermission(s.Core, srv.PermissionView), s.GetContentVersion)
			version.POST("/restore", middleware.VerifyPermission(s.Core, srv.PermissionEdit), s.RestoreContentVersion)
		}

		analytics := authed.Group("/analytics")
		{
			analytics.Use(middleware.VerifyPermission(s.Core, srv.PermissionView))
			analytics.GET("/overview", s.GetAnalyticsOverview)
			analytics.GET("/hypothesis/list", s.ListHypothesisOutcomes)
			analytics.GET("/outcome/notes", s.ListOutcomeNotes)
		}
	}
}
