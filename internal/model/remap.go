package model

// RemapForm 运单表单字段（TEMU PGA MANIFEST 转换）
type RemapForm struct {
	MAWB      string  `json:"mawb" form:"mawb" validate:"required,mawb"`
	FlightNo  string  `json:"flightNo" form:"flightNo" validate:"required"`
	Airport   Airport `json:"airport" form:"airport" validate:"omitempty,oneof=ORD JFK MIA LAX SFO"`
	HouseBill string  `json:"houseBill" form:"houseBill"`
	EntryDate string  `json:"entryDate" form:"entryDate"`
}

// MAWBPrefix 主单号前 3 位（航司代码）
func (f RemapForm) MAWBPrefix() string {
	return prefix(f.MAWB, 3)
}

// MAWBSerial 主单号横杠后的部分
func (f RemapForm) MAWBSerial() string {
	if len(f.MAWB) <= 4 {
		return ""
	}
	return f.MAWB[4:]
}

// FlightCarrier 航班号前 2 位
func (f RemapForm) FlightCarrier() string {
	return prefix(f.FlightNo, 2)
}

// FlightNumber 航班号剩余部分
func (f RemapForm) FlightNumber() string {
	if len(f.FlightNo) <= 2 {
		return ""
	}
	return f.FlightNo[2:]
}

// AirportOrDefault 未选择口岸时回落到默认值
func (f RemapForm) AirportOrDefault() Airport {
	if f.Airport == "" {
		return DefaultAirport
	}
	return f.Airport
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// RowIssue 单行数据质量提示（不阻断导出）
type RowIssue struct {
	SourceRow int      `json:"sourceRow"` // 源文件行号（1-based）
	OutputRow int      `json:"outputRow"` // 输出文件行号（1-based）
	Messages  []string `json:"messages"`
}
