package parser

import (
	"regexp"
	"strings"

	"pgatool/internal/model"
)

var (
	bracketRe     = regexp.MustCompile(`\[([^\]]+)\]`)
	summaryLineRe = regexp.MustCompile(`Summary Line (\d+)`)
	fdaLineRe     = regexp.MustCompile(`Line (\d+),`)
)

const (
	markerCPSHeader = "] CPS, CPS:"
	markerFDAHeader = "] FDA,"
	markerCPSDetail = "[CPS]"
	markerFDADetail = "[FDA]"
)

// carried 子系统标题行携带的时间与状态
type carried struct {
	eventTime string
	status    string
}

// NETCHBParser 解析 NETCHB 状态日志：CPS/FDA 标题行携带状态，明细行产出数据
//
// 明细行若出现在对应标题行之前，会产出时间与状态为空的行。
type NETCHBParser struct{}

// Parse 实现 StatusLogParser
func (NETCHBParser) Parse(groups []model.InputGroup, airport model.Airport) []model.LogRow {
	tz := airport.TimeZone()
	var rows []model.LogRow

	for _, g := range groups {
		if !usableGroup(g) {
			continue
		}
		entry := strings.TrimSpace(g.EntryNumber)
		var cps, fda carried

		for _, line := range splitLines(g.Text) {
			if strings.Contains(line, markerCPSHeader) {
				if m := bracketRe.FindStringSubmatch(line); m != nil {
					cps.eventTime = PadMonth(m[1])
				}
				if strings.Contains(line, phraseDataUnderReview) {
					cps.status = model.StatusCPSCCheck
				}
			}

			if strings.Contains(line, markerFDAHeader) {
				if m := bracketRe.FindStringSubmatch(line); m != nil {
					fda.eventTime = PadMonth(m[1])
				}
				if strings.Contains(line, phraseUnderReview) {
					fda.status = model.StatusFDACheck
				}
			}

			if strings.Contains(line, markerCPSDetail) {
				if m := summaryLineRe.FindStringSubmatch(line); m != nil {
					rows = append(rows, newRow(entry, cps, tz, m[1]))
				}
			}

			if strings.Contains(line, markerFDADetail) {
				if m := fdaLineRe.FindStringSubmatch(line); m != nil {
					rows = append(rows, newRow(entry, fda, tz, m[1]))
				}
			}
		}
	}

	return rows
}

func newRow(entry string, c carried, tz, line string) model.LogRow {
	return model.LogRow{
		EntryNumber: entry,
		Status:      c.status,
		EventTime:   c.eventTime,
		TimeZone:    tz,
		Line:        line,
	}
}

// PadMonth 月份为一位数时补前导 0："7/06/25 18:18" -> "07/06/25 18:18"
func PadMonth(t string) string {
	parts := strings.Split(t, "/")
	if len(parts) >= 3 && len(parts[0]) == 1 {
		return "0" + t
	}
	return t
}
