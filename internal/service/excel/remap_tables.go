package excel

import "pgatool/internal/model"

// 输出模板布局
const (
	OutputSheetName    = "Processed Data"
	TemplateLastColumn = "DY"
	ErrorColumn        = "DY"
	ErrorColumnTitle   = "Error Message"
	MAWBSheetName      = "mawb"
	MAWBSheetCell      = "A2"
	outputColumnWidth  = 15
	sourceFirstDataRow = 2  // 0-based，跳过两行表头
	sourceProbeColumns = 11 // A..K 任一有值即视为非空行
)

// 表单字段写入的目标列
const (
	colMAWBSheetValue = "AB"
	colMAWBPrefix     = "AH"
	colMAWBSerial     = "AI"
	colFlightCarrier  = "AS"
	colFlightNumber   = "AT"
	colHouseBill      = "AJ"
)

// entryDateColumns Date of Import / Entry / Arrival / Export
var entryDateColumns = []string{"K", "L", "AQ", "AN"}

// columnMapping 源列 -> 目标列（可多列）
type columnMapping struct {
	Source  string
	Targets []string
}

var columnMappings = []columnMapping{
	{Source: "E", Targets: []string{"V"}},
	{Source: "G", Targets: []string{"W"}},
	{Source: "CB", Targets: []string{"S"}},
	{Source: "CA", Targets: []string{"T"}},
	{Source: "BY", Targets: []string{"Q"}},
	{Source: "BX", Targets: []string{"P"}},
	{Source: "BW", Targets: []string{"O"}},
	{Source: "BO", Targets: []string{"AC", "AK"}},
	{Source: "CD", Targets: []string{"C"}},
	{Source: "BH", Targets: []string{"G", "AM"}},
	{Source: "BL", Targets: []string{"AO", "AP"}},
	{Source: "BM", Targets: []string{"H"}},
	{Source: "BP", Targets: []string{"I"}},
	{Source: "BT", Targets: []string{"BF"}},
	{Source: "N", Targets: []string{"AA"}},
}

// fixedValue 每行固定填充
type fixedValue struct {
	Value  string
	Target string
}

var fixedValues = []fixedValue{
	{Value: "Admiralty", Target: "X"},
	{Value: "40", Target: "M"},
	{Value: "01", Target: "B"},
	{Value: "2568210", Target: "D"},
	{Value: "2567704", Target: "E"},
	{Value: "Y", Target: "F"},
	{Value: "PCS", Target: "AL"},
	{Value: "4701", Target: "AV"},
}

// literal 口岸相关的固定值，一个值可广播到多列
type literal struct {
	Value   string
	Targets []string
}

var (
	bundleHBT1 = []literal{
		{Value: "HBT1", Targets: []string{"AR"}},
		{Value: "IL", Targets: []string{"AX"}},
		{Value: "3901", Targets: []string{"AU", "AW", "J"}},
	}
	bundleLEG0 = []literal{
		{Value: "LEG0", Targets: []string{"AR"}},
		{Value: "5206", Targets: []string{"AU", "AW", "J"}},
		{Value: "FL", Targets: []string{"AX"}},
	}
	bundleWBH9 = []literal{
		{Value: "WBH9", Targets: []string{"AR"}},
		{Value: "2720", Targets: []string{"J", "AU", "AW"}},
		{Value: "CA", Targets: []string{"AX"}},
	}
	bundleW0B3 = []literal{
		{Value: "W0B3", Targets: []string{"AR"}},
		{Value: "2801", Targets: []string{"J", "AU", "AW"}},
		{Value: "CA", Targets: []string{"AX"}},
	}
)

// airportBundles ORD 与 JFK 共用一组
var airportBundles = map[model.Airport][]literal{
	model.AirportORD: bundleHBT1,
	model.AirportJFK: bundleHBT1,
	model.AirportMIA: bundleLEG0,
	model.AirportLAX: bundleWBH9,
	model.AirportSFO: bundleW0B3,
}

// 校验规则作用的目标列
const (
	colManufactureName    = "O"
	colManufactureAddress = "P"
	colManufactureZip     = "T"
)

const (
	msgAddress = "manufacture_address is required, must be between 3 and 255 characters, and cannot contain Chinese characters"
	msgName    = "manufacture_name is required, must be between 3 and 100 characters, and cannot contain Chinese characters"
	msgZip     = "manufacture_zip_code must be 6 digits"
)
