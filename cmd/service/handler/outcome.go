package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/ck123cabz/template-genius-activation-sub001/app/logic/v1"
	"github.com/ck123cabz/template-genius-activation-sub001/app/response"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/utils"
)

type MarkOutcomeRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

func (s *HttpSrv) MarkOutcome(c *gin.Context) {
	var (
		err error
		req MarkOutcomeRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	clientID, _ := c.Params.Get("clientid")
	outcome, err := v1.NewOutcomeLogic(c, s.Core).MarkOutcome(clientID, req.Status, req.Note)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, outcome)
}

func (s *HttpSrv) GetCurrentOutcome(c *gin.Context) {
	clientID, _ := c.Params.Get("clientid")

	outcome, err := v1.NewOutcomeLogic(c, s.Core).GetCurrentOutcome(clientID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, outcome)
}

type ListOutcomesResponse struct {
	List []types.JourneyOutcome `json:"list"`
}

func (s *HttpSrv) ListOutcomes(c *gin.Context) {
	clientID, _ := c.Params.Get("clientid")

	list, err := v1.NewOutcomeLogic(c, s.Core).ListOutcomes(clientID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListOutcomesResponse{
		List: list,
	})
}

type ListOutcomeNotesRequest struct {
	Page     uint64 `json:"page" form:"page" binding:"required"`
	Pagesize uint64 `json:"pagesize" form:"pagesize" binding:"required,max=50"`
}

func (s *HttpSrv) ListOutcomeNotes(c *gin.Context) {
	var (
		err error
		req ListOutcomeNotesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewOutcomeLogic(c, s.Core).ListNotes(req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListOutcomesResponse{
		List: list,
	})
}
