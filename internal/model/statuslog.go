package model

import "strings"

// 状态标签
const (
	StatusCPSCCheck   = "CPSC_check"
	StatusCPSCRelease = "CPSC_release"
	StatusFDACheck    = "FDA_check"
)

// LogRow 状态日志解析出的一行
type LogRow struct {
	EntryNumber string `json:"entryNumber"`
	Status      string `json:"status"`
	EventTime   string `json:"eventTime"`
	TimeZone    string `json:"timeZone"`
	Line        string `json:"line"`
}

// Values 按固定列顺序输出
func (r LogRow) Values() []string {
	return []string{r.EntryNumber, r.Status, r.EventTime, r.TimeZone, r.Line}
}

// InputGroup 一段粘贴的日志文本及其报关单号
type InputGroup struct {
	ID          int    `json:"id"`
	EntryNumber string `json:"entryNumber"`
	Text        string `json:"text"`
	Expanded    bool   `json:"expanded"`
}

// NewInputGroups 创建 n 个空输入组，仅展开第一个
func NewInputGroups(n int) []InputGroup {
	groups := make([]InputGroup, n)
	for i := range groups {
		groups[i] = InputGroup{ID: i + 1, Expanded: i == 0}
	}
	return groups
}

// LogFilter 表格列筛选（大小写不敏感的子串匹配，空值表示不限制）
type LogFilter struct {
	EntryNumber string `json:"entryNumber" form:"entryNumber"`
	Status      string `json:"status" form:"status"`
	EventTime   string `json:"eventTime" form:"eventTime"`
	TimeZone    string `json:"timeZone" form:"timeZone"`
	Line        string `json:"line" form:"line"`
}

// IsZero 是否未设置任何筛选条件
func (f LogFilter) IsZero() bool {
	return f == LogFilter{}
}

// Match 各列条件取 AND
func (f LogFilter) Match(r LogRow) bool {
	return containsFold(r.EntryNumber, f.EntryNumber) &&
		containsFold(r.Status, f.Status) &&
		containsFold(r.EventTime, f.EventTime) &&
		containsFold(r.TimeZone, f.TimeZone) &&
		containsFold(r.Line, f.Line)
}

// Apply 返回筛选后的行，保持原顺序
func (f LogFilter) Apply(rows []LogRow) []LogRow {
	out := make([]LogRow, 0, len(rows))
	for _, r := range rows {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Set 按列名设置筛选值
func (f *LogFilter) Set(column, value string) bool {
	switch column {
	case "entryNumber":
		f.EntryNumber = value
	case "status":
		f.Status = value
	case "eventTime":
		f.EventTime = value
	case "timeZone":
		f.TimeZone = value
	case "line":
		f.Line = value
	default:
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ParseSession 一次日志解析会话（页面会话内有效）
type ParseSession struct {
	Token   string       `json:"token"`
	Variant string       `json:"variant"`
	Airport Airport      `json:"airport"`
	MAWB    string       `json:"mawb"`
	Groups  []InputGroup `json:"groups"`
	Rows    []LogRow     `json:"rows"`
	Filter  LogFilter    `json:"filter"`
}

// FilteredRows 当前筛选视图
func (s *ParseSession) FilteredRows() []LogRow {
	return s.Filter.Apply(s.Rows)
}

// Reset 清空所有输入与结果，只保留第一个输入组展开；口岸保持不变
func (s *ParseSession) Reset() {
	for i := range s.Groups {
		s.Groups[i].EntryNumber = ""
		s.Groups[i].Text = ""
		s.Groups[i].Expanded = i == 0
	}
	s.MAWB = ""
	s.Rows = nil
	s.Filter = LogFilter{}
}
