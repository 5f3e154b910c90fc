package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pgatool/internal/model"
	"pgatool/internal/parser"
)

// VariantInfo 日志来源说明
type VariantInfo struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	GroupCount int      `json:"groupCount"`
	Header     []string `json:"header"`
}

// StatusResponse 系统状态响应
type StatusResponse struct {
	Sessions      int             `json:"sessions"`
	RemapAirports []model.Airport `json:"remapAirports"`
	LogAirports   []model.Airport `json:"logAirports"`
	Variants      []VariantInfo   `json:"variants"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	sessions, err := h.store.CountSessions()
	if err != nil {
		sessions = 0
	}

	variants := make([]VariantInfo, 0, len(parser.Variants))
	for _, v := range parser.Variants {
		variants = append(variants, VariantInfo{
			Name:       v.Name,
			Title:      v.Title,
			GroupCount: v.GroupCount,
			Header:     v.Header,
		})
	}

	c.JSON(http.StatusOK, StatusResponse{
		Sessions:      sessions,
		RemapAirports: model.RemapAirports,
		LogAirports:   model.LogAirports,
		Variants:      variants,
	})
}
