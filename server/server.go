// Package server собирает HTTP сервер дашборда: middleware, маршруты,
// запуск и graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"dashboard/database"
	"dashboard/internal/config"
	"dashboard/server/handlers"
	"dashboard/server/middleware"
)

// Version версия сервера, отдается в /api/health
const Version = "1.0.0"

// Server HTTP сервер дашборда качества данных
type Server struct {
	config     *config.Config
	reportsDB  *database.ReportsDB
	httpServer *http.Server
}

// NewServer создает сервер. reportsDB может быть nil —
// тогда эндпоинты истории не регистрируются.
func NewServer(cfg *config.Config, reportsDB *database.ReportsDB) *Server {
	return &Server{
		config:    cfg,
		reportsDB: reportsDB,
	}
}

// buildHTTPHandler создает gin router со всеми middleware и маршрутами
func (s *Server) buildHTTPHandler() http.Handler {
	// Устанавливаем режим Gin: release для продакшена, debug для разработки
	// Можно переопределить через переменную окружения GIN_MODE
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Применяем middleware
	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())

	s.registerRoutes(router)

	return router
}

// registerRoutes регистрирует все маршруты приложения
func (s *Server) registerRoutes(router *gin.Engine) {
	maxUploadBytes := int64(s.config.MaxUploadSizeMB) << 20

	dashboardHandler := handlers.NewDashboardHandler(s.config.MetricsPolicy(), maxUploadBytes, s.reportsDB)
	systemHandler := handlers.NewSystemHandler(Version)

	// Эндпоинт загрузки защищен rate limit: обсчет больших файлов
	// заметно дороже остальных запросов
	router.POST("/api/dashboard/upload",
		middleware.GinRateLimitMiddleware(s.config.UploadRateLimit, int(s.config.UploadRateLimit)+1),
		dashboardHandler.HandleUpload,
	)

	if s.reportsDB != nil {
		reportsHandler := handlers.NewReportsHandler(s.reportsDB)
		router.GET("/api/reports", reportsHandler.HandleListReports)
		router.GET("/api/reports/:uuid", reportsHandler.HandleGetReport)
	}

	router.GET("/api/health", systemHandler.HandleHealth)

	handlers.RegisterSwaggerRoutes(router)

	// Статика дашборда (регистрируем последней, чтобы не перехватывать API)
	router.Static("/static", s.config.StaticDir)
	router.GET("/", func(c *gin.Context) {
		c.File(s.config.StaticDir + "index.html")
	})
}

// Start запускает HTTP сервер и блокируется до его остановки
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.buildHTTPHandler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // обсчет больших загрузок занимает время
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Сервер запускается на порту %s", s.config.Port)
	log.Printf("Дашборд доступен по адресу: http://localhost%s", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("не удалось запустить HTTP сервер на %s: %w", addr, err)
	}

	return nil
}

// Shutdown останавливает сервер, дожидаясь активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	log.Println("Initiating graceful shutdown...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка остановки сервера: %w", err)
	}

	log.Println("Graceful shutdown completed")
	return nil
}
