package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
)

// HttpSrv HTTP服务结构
type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}
