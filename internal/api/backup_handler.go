package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// maxImportBytes caps import payloads; a full export of years of training
// stays well under this.
const maxImportBytes = 8 << 20

// BackupHandler holds the backup service dependency.
type BackupHandler struct {
	backupService service.BackupService
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupService service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export returns the full tracker state as a downloadable JSON document.
func (h *BackupHandler) Export(c *gin.Context) {
	doc, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("backup export failed")
		abortWithError(c, http.StatusInternalServerError, "Could not build export")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="gym-dashboard-backup.json"`)
	c.JSON(http.StatusOK, doc)
}

// Import replaces all stores from an export document. Validation happens
// before any write, so a malformed document leaves everything untouched.
func (h *BackupHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Could not read import payload")
		return
	}

	if err := h.backupService.Import(c.Request.Context(), raw); err != nil {
		if errors.Is(err, service.ErrImportInvalid) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			logrus.WithError(err).Error("backup import failed")
			abortWithError(c, http.StatusInternalServerError, "Could not apply import")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "import applied"})
}

// UploadOffsite ships a fresh export to the configured bucket.
func (h *BackupHandler) UploadOffsite(c *gin.Context) {
	key, err := h.backupService.UploadOffsite(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrOffsiteUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else {
			logrus.WithError(err).Error("offsite backup failed")
			abortWithError(c, http.StatusInternalServerError, "Could not upload backup")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"objectKey": key})
}
