package v1

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pgatool/internal/service/excel"
	"pgatool/internal/store"
)

// TemplateLoader 加载 NETCHB 模板
type TemplateLoader interface {
	Load(ctx context.Context) (*excelize.File, error)
}

// Handler V1 API 处理器
type Handler struct {
	store     *store.Store
	templates TemplateLoader
	remapper  *excel.Remapper
	logger    *zap.Logger
}

// NewHandler 创建 V1 API 处理器
func NewHandler(st *store.Store, templates TemplateLoader, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:     st,
		templates: templates,
		remapper:  excel.NewRemapper(logger.Named("remap")),
		logger:    logger,
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// TEMU PGA MANIFEST -> NETCHB
	router.POST("/remap", h.Remap)
	router.GET("/remap/history", h.RemapHistory)

	// T01 PGA 状态日志
	logs := router.Group("/logs")
	logs.POST("/:variant/sessions", h.CreateSession)
	logs.GET("/sessions/:token", h.GetSession)
	logs.POST("/sessions/:token/parse", h.ParseLogs)
	logs.GET("/sessions/:token/rows", h.FilterRows)
	logs.GET("/sessions/:token/export", h.ExportRows)
	logs.POST("/sessions/:token/reset", h.ResetSession)
}
