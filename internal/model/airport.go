package model

// Airport 入境口岸（POE）代码
type Airport string

const (
	AirportORD Airport = "ORD"
	AirportJFK Airport = "JFK"
	AirportDFW Airport = "DFW"
	AirportMIA Airport = "MIA"
	AirportLAX Airport = "LAX"
	AirportSFO Airport = "SFO"
)

// DefaultAirport 表单默认口岸
const DefaultAirport = AirportORD

// RemapAirports 转换工具可选口岸（顺序即下拉顺序）
var RemapAirports = []Airport{AirportORD, AirportJFK, AirportMIA, AirportLAX, AirportSFO}

// LogAirports 状态日志解析可选口岸
var LogAirports = []Airport{AirportORD, AirportJFK, AirportDFW, AirportMIA, AirportLAX, AirportSFO}

// IANA 时区
const (
	ZoneCentral = "America/Chicago"
	ZoneEastern = "America/New_York"
	ZonePacific = "America/Los_Angeles"
)

// TimeZone 口岸对应时区，未知口岸返回空串
func (a Airport) TimeZone() string {
	switch a {
	case AirportORD, AirportDFW:
		return ZoneCentral
	case AirportMIA, AirportJFK:
		return ZoneEastern
	case AirportLAX, AirportSFO:
		return ZonePacific
	}
	return ""
}

// In 判断口岸是否在给定列表中
func (a Airport) In(list []Airport) bool {
	for _, v := range list {
		if v == a {
			return true
		}
	}
	return false
}
