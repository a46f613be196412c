package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/ck123cabz/template-genius-activation-sub001/app/logic/v1"
	"github.com/ck123cabz/template-genius-activation-sub001/app/response"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/utils"
)

type ListContentVersionsRequest struct {
	Page     uint64 `json:"page" form:"page" binding:"required"`
	Pagesize uint64 `json:"pagesize" form:"pagesize" binding:"required,max=50"`
}

func (s *HttpSrv) ListContentVersions(c *gin.Context) {
	var (
		err error
		req ListContentVersionsRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	pageID, _ := c.Params.Get("pageid")
	list, err := v1.NewContentVersionLogic(c, s.Core).ListVersions(pageID, req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, list)
}

func (s *HttpSrv) GetCurrentContentVersion(c *gin.Context) {
	pageID, _ := c.Params.Get("pageid")

	version, err := v1.NewContentVersionLogic(c, s.Core).GetCurrentVersion(pageID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, version)
}

func (s *HttpSrv) GetContentVersion(c *gin.Context) {
	versionID, _ := c.Params.Get("versionid")

	version, err := v1.NewContentVersionLogic(c, s.Core).GetVersion(versionID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, version)
}

func (s *HttpSrv) RestoreContentVersion(c *gin.Context) {
	versionID, _ := c.Params.Get("versionid")

	version, err := v1.NewContentVersionLogic(c, s.Core).RestoreVersion(versionID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, version)
}
