package v1

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fazi9228/cs-data-processor/internal/importer"
	"github.com/fazi9228/cs-data-processor/internal/parser"
)

// UploadedSheet is the classification preview for one sheet.
type UploadedSheet struct {
	Name       string   `json:"name"`
	RowCount   int      `json:"rowCount"`
	RecordType string   `json:"recordType"`
	Confidence float64  `json:"confidence"`
	Indicators []string `json:"indicators,omitempty"`
}

// UploadedFile is the stored upload plus its per-sheet preview.
type UploadedFile struct {
	OriginalName string          `json:"originalName"`
	StoredName   string          `json:"storedName"`
	Sheets       []UploadedSheet `json:"sheets"`
}

// Upload saves workbooks into the upload directory and returns the
// classification preview. Nothing is transformed yet; the client reviews
// the detected types (and can override them) before calling Process.
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	var uploaded []UploadedFile
	for _, fh := range files {
		original := filepath.Base(fh.Filename)
		if !strings.HasSuffix(strings.ToLower(original), ".xlsx") {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported file type: %s", original)})
			return
		}

		storedName := fmt.Sprintf("%s_%s", uuid.New().String()[:8], original)
		storedPath := filepath.Join(h.uploadDir, storedName)
		if err := c.SaveUploadedFile(fh, storedPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to save %s", original)})
			return
		}

		sheets, err := importer.ReadWorkbook(storedPath)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("failed to read %s: %v", original, err)})
			return
		}

		file := UploadedFile{OriginalName: original, StoredName: storedName}
		for _, sheet := range sheets {
			// Classification hints come from the original filename, not the
			// stored one with its random prefix.
			res := parser.Classify(sheet.Headers, original)
			file.Sheets = append(file.Sheets, UploadedSheet{
				Name:       sheet.Name,
				RowCount:   sheet.RowCount(),
				RecordType: string(res.Type),
				Confidence: res.Confidence,
				Indicators: res.Indicators,
			})
		}
		uploaded = append(uploaded, file)
	}

	c.JSON(http.StatusOK, gin.H{"files": uploaded})
}
