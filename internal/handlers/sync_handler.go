package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"payroll-sync-backend/internal/models"
	"payroll-sync-backend/internal/repository"
	service "payroll-sync-backend/internal/services/sync"
)

type SyncHandler struct {
	service *service.Service
	store   repository.Store
}

func NewSyncHandler(svc *service.Service, store repository.Store) *SyncHandler {
	return &SyncHandler{service: svc, store: store}
}

// PostSync triggers a run: POST /api/sync?source=api. Anything other than
// "api" means FILE.
func (h *SyncHandler) PostSync(c *gin.Context) {
	src := models.SourceFile
	if strings.EqualFold(c.Query("source"), "api") {
		src = models.SourceAPI
	}

	result, err := h.service.Run(c.Request.Context(), src)
	if err != nil {
		// Row-level problems are inside result; an error here means the run
		// itself died (source unreachable, storage down).
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sync failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *SyncHandler) GetSyncRuns(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	runs, err := h.store.ListRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, runs)
}
