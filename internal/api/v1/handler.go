package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/fazi9228/cs-data-processor/internal/exporter"
	"github.com/fazi9228/cs-data-processor/internal/store"
)

// Handler is the v1 API handler.
type Handler struct {
	store     *store.Store
	exporter  *exporter.Exporter
	uploadDir string
	exportDir string
	downloads *exportDownloadStore
}

// NewHandler creates the v1 API handler.
func NewHandler(st *store.Store, exp *exporter.Exporter, uploadDir, exportDir string) *Handler {
	return &Handler{
		store:     st,
		exporter:  exp,
		uploadDir: uploadDir,
		exportDir: exportDir,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes registers the v1 API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// system status
	router.GET("/status", h.GetStatus)

	// upload and classification preview
	router.POST("/upload", h.Upload)

	// processing (SSE progress stream)
	router.POST("/process", h.Process)

	// master table downloads
	router.GET("/export/download/:token", h.DownloadExport)

	// audit trail
	router.GET("/runs", h.ListRuns)
	router.GET("/runs/:id/sheets", h.GetRunSheets)
}
