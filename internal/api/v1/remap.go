package v1

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pgatool/internal/model"
	"pgatool/internal/service/excel"
)

// Remap 上传 TEMU PGA 清单并下载 NETCHB 文件
// POST /api/remap
func (h *Handler) Remap(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a file first"})
		return
	}
	if err := excel.CheckUploadName(fh.Filename); err != nil {
		h.fail(c, err)
		return
	}

	var form model.RemapForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的表单数据"})
		return
	}
	if err := excel.ValidateRemapForm(form); err != nil {
		h.fail(c, err)
		return
	}

	logID, err := h.store.CreateRemapLog(fh.Filename, fh.Size, form.MAWB, form.AirportOrDefault())
	if err != nil {
		h.fail(c, err)
		return
	}

	res, err := h.runRemap(c, fh.Open, form)
	if err != nil {
		h.completeRemapLog(logID, 0, 0, model.RemapStatusFailed, userMessage(err))
		h.fail(c, err)
		return
	}
	defer res.File.Close()

	c.Header("X-Remap-Rows", strconv.Itoa(res.Rows))
	c.Header("X-Remap-Issues", strconv.Itoa(len(res.Issues)))
	if err := sendWorkbook(c, res.Filename, res.File); err != nil {
		h.completeRemapLog(logID, res.Rows, len(res.Issues), model.RemapStatusFailed, err.Error())
		h.fail(c, err)
		return
	}
	h.completeRemapLog(logID, res.Rows, len(res.Issues), model.RemapStatusDone, "")
}

// runRemap 读取上传文件与模板后执行映射
func (h *Handler) runRemap(c *gin.Context, open func() (multipart.File, error), form model.RemapForm) (*excel.RemapResult, error) {
	upload, err := open()
	if err != nil {
		return nil, excel.ErrUnreadableUpload
	}
	defer upload.Close()

	src, err := excel.OpenUpload(upload)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	tmpl, err := h.templates.Load(c.Request.Context())
	if err != nil {
		return nil, err
	}
	defer tmpl.Close()

	return h.remapper.Remap(src, tmpl, form)
}

func (h *Handler) completeRemapLog(id int64, rows, issues int, status, message string) {
	if err := h.store.CompleteRemapLog(id, rows, issues, status, message); err != nil {
		h.logger.Warn("update remap log failed", zap.Int64("id", id), zap.Error(err))
	}
}

// RemapHistory 最近的转换记录
// GET /api/remap/history?limit=20
func (h *Handler) RemapHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	logs, err := h.store.RecentRemapLogs(limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": logs})
}
