package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pgatool/internal/model"
	"pgatool/internal/parser"
	"pgatool/internal/service/excel"
)

// CreateSessionRequest 新建会话请求
type CreateSessionRequest struct {
	Airport model.Airport `json:"airport"`
}

// ParseRequest 解析请求：groups 按 id（1-based）或顺序写入输入组
type ParseRequest struct {
	Airport model.Airport      `json:"airport"`
	MAWB    string             `json:"mawb"`
	Groups  []model.InputGroup `json:"groups"`
}

// SessionResponse 会话状态 + 当前筛选视图
type SessionResponse struct {
	Session  *model.ParseSession `json:"session"`
	View     []model.LogRow      `json:"view"`
	Total    int                 `json:"total"`
	Filename string              `json:"filename"`
}

var filterColumns = []string{"entryNumber", "status", "eventTime", "timeZone", "line"}

func checkLogAirport(a model.Airport) error {
	if a != "" && !a.In(model.LogAirports) {
		return errInvalidAirport
	}
	return nil
}

func (h *Handler) respondSession(c *gin.Context, sess *model.ParseSession, v parser.Variant) {
	view := sess.FilteredRows()
	c.JSON(http.StatusOK, SessionResponse{
		Session:  sess,
		View:     view,
		Total:    len(sess.Rows),
		Filename: v.ExportFilename(sess.MAWB),
	})
}

// loadSession 读取会话及其日志来源
func (h *Handler) loadSession(c *gin.Context) (*model.ParseSession, parser.Variant, bool) {
	sess, err := h.store.GetSession(c.Param("token"))
	if err != nil {
		h.fail(c, err)
		return nil, parser.Variant{}, false
	}
	v, err := parser.LookupVariant(sess.Variant)
	if err != nil {
		h.fail(c, err)
		return nil, parser.Variant{}, false
	}
	return sess, v, true
}

// CreateSession 新建解析会话
// POST /api/logs/:variant/sessions
func (h *Handler) CreateSession(c *gin.Context) {
	v, err := parser.LookupVariant(c.Param("variant"))
	if err != nil {
		h.fail(c, err)
		return
	}

	var req CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
			return
		}
	}
	if err := checkLogAirport(req.Airport); err != nil {
		h.fail(c, err)
		return
	}

	sess, err := h.store.CreateSession(v.Name, v.GroupCount, req.Airport)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respondSession(c, sess, v)
}

// GetSession 获取会话状态
// GET /api/logs/sessions/:token
func (h *Handler) GetSession(c *gin.Context) {
	sess, v, ok := h.loadSession(c)
	if !ok {
		return
	}
	h.respondSession(c, sess, v)
}

// ParseLogs 写入输入组并解析；保留当前筛选条件
// POST /api/logs/sessions/:token/parse
func (h *Handler) ParseLogs(c *gin.Context) {
	sess, v, ok := h.loadSession(c)
	if !ok {
		return
	}

	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}
	if err := checkLogAirport(req.Airport); err != nil {
		h.fail(c, err)
		return
	}
	if len(req.Groups) > len(sess.Groups) {
		h.fail(c, errTooManyGroups)
		return
	}

	if req.Airport != "" {
		sess.Airport = req.Airport
	}
	sess.MAWB = strings.TrimSpace(req.MAWB)
	for i, g := range req.Groups {
		idx := i
		if g.ID > 0 {
			idx = g.ID - 1
		}
		if idx < 0 || idx >= len(sess.Groups) {
			h.fail(c, errTooManyGroups)
			return
		}
		sess.Groups[idx].EntryNumber = g.EntryNumber
		sess.Groups[idx].Text = g.Text
		if strings.TrimSpace(g.Text) != "" {
			sess.Groups[idx].Expanded = true
		}
	}

	sess.Rows = v.Parser.Parse(sess.Groups, sess.Airport)

	if err := h.store.SaveSession(sess); err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Info("status logs parsed",
		zap.String("variant", v.Name),
		zap.String("airport", string(sess.Airport)),
		zap.Int("rows", len(sess.Rows)),
	)
	h.respondSession(c, sess, v)
}

// FilterRows 更新筛选条件（只更新请求中出现的列）并返回筛选视图
// GET /api/logs/sessions/:token/rows
func (h *Handler) FilterRows(c *gin.Context) {
	sess, v, ok := h.loadSession(c)
	if !ok {
		return
	}

	changed := false
	for _, col := range filterColumns {
		if val, present := c.GetQuery(col); present {
			sess.Filter.Set(col, val)
			changed = true
		}
	}
	if changed {
		if err := h.store.SaveSession(sess); err != nil {
			h.fail(c, err)
			return
		}
	}
	h.respondSession(c, sess, v)
}

// ExportRows 导出当前筛选视图
// GET /api/logs/sessions/:token/export
func (h *Handler) ExportRows(c *gin.Context) {
	sess, v, ok := h.loadSession(c)
	if !ok {
		return
	}

	f, err := excel.ExportLogRows(v, sess.FilteredRows())
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	if err := sendWorkbook(c, v.ExportFilename(sess.MAWB), f); err != nil {
		h.fail(c, err)
	}
}

// ResetSession 清空输入、结果与筛选
// POST /api/logs/sessions/:token/reset
func (h *Handler) ResetSession(c *gin.Context) {
	sess, v, ok := h.loadSession(c)
	if !ok {
		return
	}

	sess.Reset()
	if err := h.store.SaveSession(sess); err != nil {
		h.fail(c, err)
		return
	}
	h.respondSession(c, sess, v)
}
