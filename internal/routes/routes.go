package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"payroll-sync-backend/internal/config"
	handler "payroll-sync-backend/internal/handlers"
	"payroll-sync-backend/internal/logger"
	"payroll-sync-backend/internal/repository"
	service "payroll-sync-backend/internal/services/sync"
	"payroll-sync-backend/internal/source"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	store := repository.NewGormStore(db)

	fileSource := source.NewFileSource(cfg.DataDir)
	apiSource := source.NewAPISource(cfg.ProviderAPIURL)

	syncService := service.NewService(store, fileSource, apiSource, logger.Log)

	syncHandler := handler.NewSyncHandler(syncService, store)
	employeeHandler := handler.NewEmployeeHandler(store)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.POST("/sync", syncHandler.PostSync)
	api.GET("/sync-runs", syncHandler.GetSyncRuns)

	api.GET("/employees", employeeHandler.GetEmployees)
	api.GET("/employees/:externalId/shifts", employeeHandler.GetEmployeeShifts)
}
