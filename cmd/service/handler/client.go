package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/ck123cabz/template-genius-activation-sub001/app/logic/v1"
	"github.com/ck123cabz/template-genius-activation-sub001/app/response"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/utils"
)

func (s *HttpSrv) CreateClient(c *gin.Context) {
	var (
		err error
		req v1.CreateClientArgs
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	client, err := v1.NewClientLogic(c, s.Core).CreateClient(req)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, client)
}

func (s *HttpSrv) GetClient(c *gin.Context) {
	clientID, _ := c.Params.Get("clientid")

	client, err := v1.NewClientLogic(c, s.Core).GetClient(clientID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, client)
}

type UpdateClientRequest struct {
	Company    string `json:"company" binding:"required"`
	Contact    string `json:"contact" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Position   string `json:"position"`
	Salary     string `json:"salary"`
	Hypothesis string `json:"hypothesis"`
}

func (s *HttpSrv) UpdateClient(c *gin.Context) {
	var (
		err error
		req UpdateClientRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	clientID, _ := c.Params.Get("clientid")
	err = v1.NewClientLogic(c, s.Core).UpdateClient(clientID, types.UpdateClientArgs{
		Company:    req.Company,
		Contact:    req.Contact,
		Email:      req.Email,
		Position:   req.Position,
		Salary:     req.Salary,
		Hypothesis: req.Hypothesis,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) DeleteClient(c *gin.Context) {
	clientID, _ := c.Params.Get("clientid")

	if err := v1.NewClientLogic(c, s.Core).DeleteClient(clientID); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type ListClientsRequest struct {
	Status   string `json:"status" form:"status"`
	Keywords string `json:"keywords" form:"keywords"`
	Page     uint64 `json:"page" form:"page" binding:"required"`
	Pagesize uint64 `json:"pagesize" form:"pagesize" binding:"required,max=50"`
}

func (s *HttpSrv) ListClients(c *gin.Context) {
	var (
		err error
		req ListClientsRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewClientLogic(c, s.Core).ListClients(req.Status, req.Keywords, req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, list)
}
