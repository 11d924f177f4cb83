package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/billplz/internal/dto"
	"github.com/anyulbade/billplz/internal/service"
)

type ToolHandler struct {
	svc *service.ToolService
}

func NewToolHandler(svc *service.ToolService) *ToolHandler {
	return &ToolHandler{svc: svc}
}

func (h *ToolHandler) List(c *gin.Context) {
	tools := h.svc.Tools()
	infos := make([]dto.ToolInfo, len(tools))
	for i, t := range tools {
		infos[i] = t.Info()
	}
	c.JSON(http.StatusOK, dto.ToolListResponse{Data: infos})
}

func (h *ToolHandler) Invoke(c *gin.Context) {
	name := c.Param("name")

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "read body: " + err.Error()})
		return
	}

	input, err := h.svc.Decode(name, body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	res, err := h.svc.Invoke(c.Request.Context(), name, input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	data, err := res.JSON(false)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToolResultResponse{Tool: name, Data: data})
}
