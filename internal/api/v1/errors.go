package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pgatool/internal/parser"
	"pgatool/internal/service/excel"
	"pgatool/internal/store"
)

var errInvalidAirport = errors.New("POE must be one of ORD, JFK, DFW, MIA, LAX, SFO")

var errTooManyGroups = errors.New("too many input groups")

// userFacing 直接展示给用户的错误（隐藏包装细节）
var userFacing = []error{
	excel.ErrInvalidFileType,
	excel.ErrInvalidMAWB,
	excel.ErrMissingFlightNo,
	excel.ErrInvalidAirport,
	excel.ErrUnreadableUpload,
	excel.ErrTemplateUnavailable,
	excel.ErrUnreadableTemplate,
	store.ErrSessionNotFound,
	parser.ErrUnknownVariant,
	errInvalidAirport,
	errTooManyGroups,
}

func statusFor(err error) int {
	switch {
	case excel.IsInputError(err),
		errors.Is(err, excel.ErrUnreadableUpload),
		errors.Is(err, parser.ErrUnknownVariant),
		errors.Is(err, errInvalidAirport),
		errors.Is(err, errTooManyGroups):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, excel.ErrTemplateUnavailable), errors.Is(err, excel.ErrUnreadableTemplate):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func userMessage(err error) string {
	for _, target := range userFacing {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

// fail 记录并返回错误
func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		h.logger.Info("request rejected", zap.String("path", c.FullPath()), zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": userMessage(err)})
}
