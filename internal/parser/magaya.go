package parser

import (
	"regexp"
	"strings"

	"pgatool/internal/model"
)

var (
	// Sat Aug 09 2025 06:07:32 GMT-0500 (Central Daylight Time)
	gmtStampRe = regexp.MustCompile(`(\w+)\s+(\w+)\s+(\d{2})\s+(\d{4})\s+(\d{2}):(\d{2}):(\d{2})`)
	lineHashRe = regexp.MustCompile(`Line#\s+(\d+)`)
)

var monthNumbers = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

const (
	phraseDataUnderReview = "DATA UNDER PGA REVIEW"
	phraseUnderReview     = "UNDER PGA REVIEW"
	phraseMayProceed      = "MAY PROCEED"
)

// MagayaParser 解析 MAGAYA 状态日志：GMT 时间行携带时间，Line# 行产出数据
type MagayaParser struct{}

// Parse 实现 StatusLogParser
func (MagayaParser) Parse(groups []model.InputGroup, airport model.Airport) []model.LogRow {
	tz := airport.TimeZone()
	var rows []model.LogRow

	for _, g := range groups {
		if !usableGroup(g) {
			continue
		}
		entry := strings.TrimSpace(g.EntryNumber)
		eventTime := ""

		for _, raw := range splitLines(g.Text) {
			line := strings.TrimSpace(raw)

			if strings.Contains(line, "GMT-") || strings.Contains(line, "GMT+") {
				eventTime = FormatGMTStamp(line)
				continue
			}

			if !strings.HasPrefix(line, "Line#") {
				continue
			}
			m := lineHashRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			status := ""
			switch {
			case strings.Contains(line, phraseDataUnderReview):
				status = model.StatusCPSCCheck
			case strings.Contains(line, phraseMayProceed):
				status = model.StatusCPSCRelease
			}
			if status == "" {
				continue
			}

			rows = append(rows, model.LogRow{
				EntryNumber: entry,
				Status:      status,
				EventTime:   eventTime,
				TimeZone:    tz,
				Line:        m[1],
			})
		}
	}

	return rows
}

// FormatGMTStamp 将浏览器时间串格式化为 MM/DD/YY HH:MM
// 无法识别时返回空串；未知月份记为 00
func FormatGMTStamp(s string) string {
	m := gmtStampRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	month, ok := monthNumbers[m[2]]
	if !ok {
		month = "00"
	}
	year := m[4][len(m[4])-2:]
	return month + "/" + m[3] + "/" + year + " " + m[5] + ":" + m[6]
}
