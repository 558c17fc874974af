package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListRuns returns the audit trail, newest first.
// GET /api/runs
func (h *Handler) ListRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	runs, err := h.store.ListRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// GetRunSheets returns the per-sheet outcomes of one run.
// GET /api/runs/:id/sheets
func (h *Handler) GetRunSheets(c *gin.Context) {
	sheets, err := h.store.RunSheets(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sheets": sheets})
}
