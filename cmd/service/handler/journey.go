package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/ck123cabz/template-genius-activation-sub001/app/logic/v1"
	"github.com/ck123cabz/template-genius-activation-sub001/app/response"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/utils"
)

type ListJourneyPagesResponse struct {
	List []types.JourneyPage `json:"list"`
}

func (s *HttpSrv) ListJourneyPages(c *gin.Context) {
	clientID, _ := c.Params.Get("clientid")

	list, err := v1.NewJourneyLogic(c, s.Core).ListPages(clientID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListJourneyPagesResponse{
		List: list,
	})
}

type ListJourneyEventsRequest struct {
	Page     uint64 `json:"page" form:"page" binding:"required"`
	Pagesize uint64 `json:"pagesize" form:"pagesize" binding:"required,max=50"`
}

type ListJourneyEventsResponse struct {
	List []types.JourneyEvent `json:"list"`
}

func (s *HttpSrv) ListJourneyEvents(c *gin.Context) {
	var (
		err error
		req ListJourneyEventsRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	clientID, _ := c.Params.Get("clientid")
	list, err := v1.NewJourneyLogic(c, s.Core).ListEvents(clientID, req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListJourneyEventsResponse{
		List: list,
	})
}

func (s *HttpSrv) GetJourneyPage(c *gin.Context) {
	clientID, _ := c.Params.Get("clientid")
	pageType, _ := c.Params.Get("page_type")

	page, err := v1.NewJourneyLogic(c, s.Core).GetPage(clientID, pageType)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, page)
}

func (s *HttpSrv) UpdateJourneyPageContent(c *gin.Context) {
	var (
		err error
		req v1.UpdatePageContentArgs
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	pageID, _ := c.Params.Get("pageid")
	version, err := v1.NewJourneyLogic(c, s.Core).UpdatePageContent(pageID, req)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, version)
}
