package v1

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/importer"
)

// Import ingests one uploaded workbook and responds with the batch summary.
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	// Reject oversized uploads before parsing anything.
	maxBytes := h.cfg.Import.MaxUploadMB * 1024 * 1024
	if fileHeader.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "file too large",
		})
		return
	}

	if !h.allowedExtension(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "only Excel workbooks (.xlsx, .xls) are accepted",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	if int64(len(data)) > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	summary, err := h.coord.ImportWorkbook(data, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, importer.ErrBadWorkbook) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) allowedExtension(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, allowed := range h.cfg.Import.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
