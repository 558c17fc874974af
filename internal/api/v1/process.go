package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fazi9228/cs-data-processor/internal/importer"
	"github.com/fazi9228/cs-data-processor/internal/model"
)

// downloadTTL is how long an export token stays valid.
const downloadTTL = time.Hour

// ProcessRequest selects previously uploaded files for processing.
type ProcessRequest struct {
	// Files are stored names returned by Upload, processed in order.
	Files []string `json:"files" binding:"required"`
	// Overrides pins record types per sheet, keyed by "storedName::sheet".
	Overrides map[string]string `json:"overrides"`
}

// ExportDownload points the client at one finished master workbook.
type ExportDownload struct {
	Token    string `json:"token"`
	Filename string `json:"filename"`
}

// Process runs the pipeline over the selected uploads, streaming progress
// as SSE. The final done event carries the run report plus one download
// token per exported master table.
// POST /api/process
func (h *Handler) Process(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files selected"})
		return
	}

	var paths []string
	for _, name := range req.Files {
		path := filepath.Join(h.uploadDir, filepath.Base(name))
		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown file: %s", name)})
			return
		}
		paths = append(paths, path)
	}

	overrides := make(map[string]model.RecordType)
	for key, typeName := range req.Overrides {
		rt := model.RecordType(typeName)
		if !rt.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid record type: %s", typeName)})
			return
		}
		overrides[key] = rt
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	coordinator := importer.NewCoordinator(h.store, h.exporter, h.exportDir)
	progressChan := coordinator.Process(importer.ProcessOptions{
		FilePaths:     paths,
		TypeOverrides: overrides,
	})

	for event := range progressChan {
		if event.Type == "done" {
			if report, ok := event.Data.(*importer.ProcessReport); ok {
				event.Data = gin.H{
					"report":    report,
					"downloads": h.registerDownloads(report),
				}
			}
		}
		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}

// registerDownloads issues a short-lived token per exported master table.
func (h *Handler) registerDownloads(report *importer.ProcessReport) map[string]ExportDownload {
	downloads := make(map[string]ExportDownload, len(report.Outputs))
	for family, path := range report.Outputs {
		token := h.downloads.put(path, string(family), downloadTTL)
		downloads[string(family)] = ExportDownload{
			Token:    token,
			Filename: filepath.Base(path),
		}
	}
	return downloads
}
