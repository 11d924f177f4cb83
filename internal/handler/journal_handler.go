package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anyulbade/billplz/internal/dto"
	"github.com/anyulbade/billplz/internal/repository"
	"github.com/anyulbade/billplz/internal/service"
)

type JournalHandler struct {
	svc *service.JournalService
}

// NewJournalHandler accepts a nil service; every route then answers 503.
func NewJournalHandler(svc *service.JournalService) *JournalHandler {
	return &JournalHandler{svc: svc}
}

func (h *JournalHandler) disabled(c *gin.Context) bool {
	if h.svc != nil {
		return false
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "journal disabled: set database_url to enable it"})
	return true
}

func (h *JournalHandler) List(c *gin.Context) {
	if h.disabled(c) {
		return
	}

	p := dto.ParsePagination(c)
	entries, total, err := h.svc.List(c.Request.Context(), c.Query("tool"), p.PageSize, p.Offset)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.JournalListResponse{
		Data:       entries,
		Pagination: dto.NewPagination(p.Page, p.PageSize, total),
	})
}

func (h *JournalHandler) Get(c *gin.Context) {
	if h.disabled(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid journal entry id"})
		return
	}

	entry, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *JournalHandler) Stats(c *gin.Context) {
	if h.disabled(c) {
		return
	}

	window, err := dto.ParseTimeRange(c.Query("since"), c.Query("until"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, summary, err := h.svc.Stats(c.Request.Context(), repository.StatsFilter{
		Since:  window.Since,
		Until:  window.Until,
		SortBy: c.DefaultQuery("sort_by", "call_count"),
		Order:  c.DefaultQuery("order", "desc"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.JournalStatsResponse{Data: stats, Summary: summary})
}
