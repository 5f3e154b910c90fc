package parser

import (
	"fmt"
	"strings"

	"pgatool/internal/model"
)

// StatusLogParser 将粘贴的状态日志转换为表格行
type StatusLogParser interface {
	Parse(groups []model.InputGroup, airport model.Airport) []model.LogRow
}

// Variant 一种日志来源（解析语法 + 导出格式）
type Variant struct {
	Name       string   // 路由/命令行使用的标识
	Title      string   // 页面标题
	SheetName  string   // 导出 sheet 名
	Header     []string // 导出表头
	FileSuffix string   // 导出文件名（不含 MAWB 前缀）
	GroupCount int      // 输入组数量
	Parser     StatusLogParser
}

// ExportFilename 导出文件名；填写了 MAWB 时作为前缀
func (v Variant) ExportFilename(mawb string) string {
	mawb = strings.TrimSpace(mawb)
	if mawb == "" {
		return v.FileSuffix
	}
	return mawb + "_" + v.FileSuffix
}

var (
	// Magaya T01 PGA ENTRY-MAGAYA
	Magaya = Variant{
		Name:       "magaya",
		Title:      "T01 PGA ENTRY-MAGAYA",
		SheetName:  "MAGAYA Data",
		Header:     []string{"Entry Number", "Status", "Event Time", "Time Zone", "Line"},
		FileSuffix: "MAGAYA T01 PGA.xlsx",
		GroupCount: 23,
		Parser:     MagayaParser{},
	}

	// NETCHB T01 PGA ENTRY-NETCHB
	NETCHB = Variant{
		Name:       "netchb",
		Title:      "T01 PGA ENTRY-NETCHB",
		SheetName:  "NETCHB Data",
		Header:     []string{"EntryNumber", "Status", "Event Time", "Time Zone", "Line"},
		FileSuffix: "NETCHB T01 PGA.xlsx",
		GroupCount: 20,
		Parser:     NETCHBParser{},
	}
)

// Variants 全部日志来源
var Variants = []Variant{Magaya, NETCHB}

// LookupVariant 按名称查找（大小写不敏感）
func LookupVariant(name string) (Variant, error) {
	for _, v := range Variants {
		if strings.EqualFold(v.Name, strings.TrimSpace(name)) {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// usableGroup 报关单号与文本均非空才解析
func usableGroup(g model.InputGroup) bool {
	return strings.TrimSpace(g.Text) != "" && strings.TrimSpace(g.EntryNumber) != ""
}

// splitLines 按换行切分并去掉空行（保留行内原始空白）
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
