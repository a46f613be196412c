package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/ck123cabz/template-genius-activation-sub001/app/logic/v1"
	"github.com/ck123cabz/template-genius-activation-sub001/app/response"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/utils"
)

func (s *HttpSrv) GetAnalyticsOverview(c *gin.Context) {
	overview, err := v1.NewAnalyticsLogic(c, s.Core).Overview()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, overview)
}

type ListHypothesisOutcomesRequest struct {
	Page     uint64 `json:"page" form:"page" binding:"required"`
	Pagesize uint64 `json:"pagesize" form:"pagesize" binding:"required,max=50"`
}

type ListHypothesisOutcomesResponse struct {
	List []types.HypothesisOutcome `json:"list"`
}

func (s *HttpSrv) ListHypothesisOutcomes(c *gin.Context) {
	var (
		err error
		req ListHypothesisOutcomesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewAnalyticsLogic(c, s.Core).ListHypothesisOutcomes(req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListHypothesisOutcomesResponse{
		List: list,
	})
}
