package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "pgatool/internal/api/v1"
	"pgatool/internal/config"
	"pgatool/internal/logging"
	"pgatool/internal/service/excel"
	"pgatool/internal/store"
)

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	store  *store.Store
	v1     *v1.Handler
	logger *zap.Logger
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 会话存储：默认进程内 SQLite
	sessionStore, err := store.New(cfg.Session.DBPath, cfg.SessionTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	templates := excel.TemplateSource{
		Path:    cfg.Template.Path,
		URL:     cfg.Template.URL,
		Timeout: cfg.TemplateTimeout(),
	}

	s := &Server{
		router: gin.New(),
		store:  sessionStore,
		v1:     v1.NewHandler(sessionStore, templates, logger.Named("api")),
		logger: logger,
	}
	s.setupRoutes()

	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery())
	s.router.Use(logging.GinMiddleware(s.logger.Named("http")))

	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Expose-Headers", "Content-Disposition, X-Remap-Rows, X-Remap-Issues")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// Handler 返回底层 http.Handler（用于测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 释放会话存储
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore 获取存储（用于测试）
func (s *Server) GetStore() *store.Store {
	return s.store
}
