package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/ck123cabz/template-genius-activation-sub001/app/logic/v1"
	"github.com/ck123cabz/template-genius-activation-sub001/app/response"
)

// ViewJourneyPage 客户端通过访问码浏览旅程页面，无需登录
func (s *HttpSrv) ViewJourneyPage(c *gin.Context) {
	token, _ := c.Params.Get("token")
	pageType, _ := c.Params.Get("page_type")

	view, err := v1.NewActivationLogic(c, s.Core).ViewPage(token, pageType)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, view)
}

// AcknowledgeJourneyPage 客户确认当前页面，首次确认激活页会把客户置为 activated
func (s *HttpSrv) AcknowledgeJourneyPage(c *gin.Context) {
	token, _ := c.Params.Get("token")
	pageType, _ := c.Params.Get("page_type")

	result, err := v1.NewActivationLogic(c, s.Core).AcknowledgePage(token, pageType)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}
