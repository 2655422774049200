package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/teacher-activity-api/api/swagger"
	"github.com/noah-isme/teacher-activity-api/internal/handler"
	"github.com/noah-isme/teacher-activity-api/internal/middleware"
	"github.com/noah-isme/teacher-activity-api/internal/repository"
	"github.com/noah-isme/teacher-activity-api/internal/service"
	"github.com/noah-isme/teacher-activity-api/pkg/config"
	"github.com/noah-isme/teacher-activity-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/teacher-activity-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/teacher-activity-api/pkg/middleware/requestid"
)

// @title Teacher Activity Insights API
// @version 0.1.0
// @description Read-only analytics over a static teacher activity dataset
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	records, err := repository.LoadActivities(cfg.Dataset.File)
	if err != nil {
		logr.Sugar().Fatalw("failed to load dataset", "file", cfg.Dataset.File, "error", err)
	}
	store := repository.NewActivityStore(records)
	logr.Sugar().Infow("dataset loaded",
		"file", cfg.Dataset.File,
		"records", store.Len(),
		"duplicates_removed", store.DuplicatesRemoved(),
	)

	metricsSvc := service.NewMetricsService()
	metricsSvc.SetDatasetStats(store.Len(), store.DuplicatesRemoved())

	activitySvc := service.NewActivityService(store, metricsSvc, logr)
	analyticsSvc := service.NewAnalyticsService(store, metricsSvc, logr)
	insightSvc := service.NewInsightService(metricsSvc, logr)
	exportSvc := service.NewExportService(store, logr)

	healthHandler := handler.NewHealthHandler(activitySvc)
	activityHandler := handler.NewActivityHandler(activitySvc)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc, metricsSvc)
	insightHandler := handler.NewInsightHandler(analyticsSvc, insightSvc)
	exportHandler := handler.NewExportHandler(exportSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/activities", activityHandler.List)
		api.GET("/teachers", analyticsHandler.Teachers)
		api.GET("/summary", analyticsHandler.Summary)
		api.GET("/filters", analyticsHandler.Filters)
		api.GET("/system", analyticsHandler.System)
		if cfg.Insights.Enabled {
			api.GET("/insights", insightHandler.Insights)
		}
		if cfg.Export.Enabled {
			api.GET("/activities/export", exportHandler.Export)
		}
	}

	r.NoRoute(staticFallback(cfg.Web.StaticDir))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// staticFallback serves the front-end entry point for unrecognized paths.
// Files that exist under the static dir are served directly, everything else
// falls back to index.html so client-side routing keeps working.
func staticFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if staticDir == "" || c.Request.Method != http.MethodGet {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.File(index)
	}
}
