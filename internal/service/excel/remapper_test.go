package excel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pgatool/internal/model"
)

const srcSheet = "Sheet1"

func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	out, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = out.Close() })
	return out
}

func buildTemplate(t *testing.T) *excelize.File {
	t.Helper()

	wb := excelize.NewFile()
	require.NoError(t, wb.SetCellStr("Sheet1", "A1", "Entry Type"))
	require.NoError(t, wb.SetCellStr("Sheet1", "O1", "manufacture_name"))
	require.NoError(t, wb.SetCellStr("Sheet1", "P1", "manufacture_address"))
	require.NoError(t, wb.SetCellStr("Sheet1", "T1", "manufacture_zip_code"))
	require.NoError(t, wb.SetCellValue("Sheet1", "BZ1", 2024))
	require.NoError(t, wb.SetCellStr("Sheet1", "DZ1", "beyond DY"))
	require.NoError(t, wb.SetCellStr("Sheet1", "A2", "template sample row"))
	return reopen(t, wb)
}

// buildSource 两行表头 + 给定数据行（从第 3 行开始）
func buildSource(t *testing.T, rows []map[string]interface{}) *excelize.File {
	t.Helper()

	wb := excelize.NewFile()
	require.NoError(t, wb.SetCellStr(srcSheet, "A1", "header 1"))
	require.NoError(t, wb.SetCellStr(srcSheet, "A2", "header 2"))
	for i, row := range rows {
		for col, v := range row {
			require.NoError(t, wb.SetCellValue(srcSheet, cellName(col, i+3), v))
		}
	}
	return wb
}

func goodRow() map[string]interface{} {
	return map[string]interface{}{
		"A":  "SKU-1",
		"E":  "Toy car",
		"G":  12,
		"BW": "Shenzhen Toys Co",
		"BX": "No. 1 Industrial Road, Shenzhen",
		"CA": 518000,
		"BO": "CN",
		"BH": "Plastic",
		"BL": 3.5,
	}
}

func validForm() model.RemapForm {
	return model.RemapForm{
		MAWB:     "123-45678901",
		FlightNo: "CA8900",
		Airport:  model.AirportORD,
	}
}

func cellValue(t *testing.T, f *excelize.File, addr string) string {
	t.Helper()

	v, err := f.GetCellValue(OutputSheetName, addr)
	require.NoError(t, err)
	return v
}

func runRemap(t *testing.T, src *excelize.File, form model.RemapForm) *RemapResult {
	t.Helper()

	res, err := NewRemapper(zap.NewNop()).Remap(reopen(t, src), buildTemplate(t), form)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.File.Close() })
	return res
}

func TestRemap_SplitsMAWBAndFlight(t *testing.T) {
	res := runRemap(t, buildSource(t, []map[string]interface{}{goodRow()}), validForm())

	assert.Equal(t, "123-45678901_TEMU_NETCHB.xlsx", res.Filename)
	assert.Equal(t, 1, res.Rows)
	assert.Equal(t, "123", cellValue(t, res.File, "AH2"))
	assert.Equal(t, "45678901", cellValue(t, res.File, "AI2"))
	assert.Equal(t, "CA", cellValue(t, res.File, "AS2"))
	assert.Equal(t, "8900", cellValue(t, res.File, "AT2"))
	assert.Equal(t, "", cellValue(t, res.File, "AJ2"))
	assert.Equal(t, "", cellValue(t, res.File, "K2"))
}

func TestRemap_CopiesHeaderAndErrorColumn(t *testing.T) {
	res := runRemap(t, buildSource(t, []map[string]interface{}{goodRow()}), validForm())

	assert.Equal(t, "Entry Type", cellValue(t, res.File, "A1"))
	assert.Equal(t, "manufacture_zip_code", cellValue(t, res.File, "T1"))
	assert.Equal(t, "2024", cellValue(t, res.File, "BZ1"))
	assert.Equal(t, ErrorColumnTitle, cellValue(t, res.File, "DY1"))
	assert.Equal(t, "", cellValue(t, res.File, "DZ1"))

	typ, err := res.File.GetCellType(OutputSheetName, "BZ1")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)
	assert.NotEqual(t, excelize.CellTypeInlineString, typ)
}

func TestRemap_MappingsFixedValuesAndBundle(t *testing.T) {
	form := validForm()
	form.Airport = model.AirportMIA
	form.HouseBill = "HB-7788"
	form.EntryDate = "08/09/2025"

	res := runRemap(t, buildSource(t, []map[string]interface{}{goodRow()}), form)

	// 列映射
	assert.Equal(t, "Toy car", cellValue(t, res.File, "V2"))
	assert.Equal(t, "12", cellValue(t, res.File, "W2"))
	assert.Equal(t, "Shenzhen Toys Co", cellValue(t, res.File, "O2"))
	assert.Equal(t, "No. 1 Industrial Road, Shenzhen", cellValue(t, res.File, "P2"))
	assert.Equal(t, "518000", cellValue(t, res.File, "T2"))
	assert.Equal(t, "CN", cellValue(t, res.File, "AC2"))
	assert.Equal(t, "CN", cellValue(t, res.File, "AK2"))
	assert.Equal(t, "Plastic", cellValue(t, res.File, "G2"))
	assert.Equal(t, "Plastic", cellValue(t, res.File, "AM2"))
	assert.Equal(t, "3.5", cellValue(t, res.File, "AO2"))
	assert.Equal(t, "3.5", cellValue(t, res.File, "AP2"))
	assert.Equal(t, "", cellValue(t, res.File, "C2"))

	// 固定值
	for _, fv := range fixedValues {
		assert.Equal(t, fv.Value, cellValue(t, res.File, fv.Target+"2"), fv.Target)
	}

	// MIA 口岸
	assert.Equal(t, "LEG0", cellValue(t, res.File, "AR2"))
	assert.Equal(t, "FL", cellValue(t, res.File, "AX2"))
	for _, col := range []string{"AU", "AW", "J"} {
		assert.Equal(t, "5206", cellValue(t, res.File, col+"2"), col)
	}

	assert.Equal(t, "HB-7788", cellValue(t, res.File, "AJ2"))
	for _, col := range entryDateColumns {
		assert.Equal(t, "08/09/2025", cellValue(t, res.File, col+"2"), col)
	}

	assert.Equal(t, "", cellValue(t, res.File, "DY2"))
	assert.Empty(t, res.Issues)
}

func TestRemap_AirportBundles(t *testing.T) {
	cases := []struct {
		airport model.Airport
		ar, ax  string
		code    string
	}{
		{model.AirportORD, "HBT1", "IL", "3901"},
		{model.AirportJFK, "HBT1", "IL", "3901"},
		{model.AirportLAX, "WBH9", "CA", "2720"},
		{model.AirportSFO, "W0B3", "CA", "2801"},
		{"", "HBT1", "IL", "3901"},
	}
	for _, tc := range cases {
		form := validForm()
		form.Airport = tc.airport
		res := runRemap(t, buildSource(t, []map[string]interface{}{goodRow()}), form)

		assert.Equal(t, tc.ar, cellValue(t, res.File, "AR2"), tc.airport)
		assert.Equal(t, tc.ax, cellValue(t, res.File, "AX2"), tc.airport)
		assert.Equal(t, tc.code, cellValue(t, res.File, "J2"), tc.airport)
	}
}

func TestRemap_SkipsEmptyRows(t *testing.T) {
	onlyLateColumns := map[string]interface{}{"L": "not probed", "BW": "Factory"}
	zeroOnly := map[string]interface{}{"B": 0}
	oneProbe := map[string]interface{}{"K": "x"}

	src := buildSource(t, []map[string]interface{}{
		goodRow(),
		{},
		onlyLateColumns,
		zeroOnly,
		oneProbe,
	})
	res := runRemap(t, src, validForm())

	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, "Toy car", cellValue(t, res.File, "V2"))
	assert.Equal(t, "123", cellValue(t, res.File, "AH3"))
	assert.Equal(t, "", cellValue(t, res.File, "AH4"))

	dim, err := res.File.GetSheetDimension(OutputSheetName)
	require.NoError(t, err)
	assert.Equal(t, "A1:DY3", dim)
}

func TestRemap_ValidationMessages(t *testing.T) {
	shortName := goodRow()
	shortName["BW"] = "AB"
	shortName["CA"] = "000000"

	longAddress := goodRow()
	longAddress["BX"] = strings.Repeat("x", 256)
	longAddress["CA"] = 12345

	zeroZip := goodRow()
	zeroZip["CA"] = 0
	zeroZip["BX"] = 0

	src := buildSource(t, []map[string]interface{}{shortName, longAddress, zeroZip, goodRow()})
	res := runRemap(t, src, validForm())

	require.Equal(t, 4, res.Rows)
	assert.Equal(t, msgName+"; "+msgZip, cellValue(t, res.File, "DY2"))
	assert.Equal(t, msgAddress+"; "+msgZip, cellValue(t, res.File, "DY3"))
	assert.Equal(t, msgZip, cellValue(t, res.File, "DY4"))
	assert.Equal(t, "", cellValue(t, res.File, "P4"))
	assert.Equal(t, "", cellValue(t, res.File, "DY5"))

	require.Len(t, res.Issues, 3)
	assert.Equal(t, 3, res.Issues[0].SourceRow)
	assert.Equal(t, 2, res.Issues[0].OutputRow)
	assert.Equal(t, 5, res.Issues[2].SourceRow)
}

func TestRemap_MAWBSheetBroadcast(t *testing.T) {
	src := buildSource(t, []map[string]interface{}{goodRow(), goodRow()})
	_, err := src.NewSheet(MAWBSheetName)
	require.NoError(t, err)
	require.NoError(t, src.SetCellStr(MAWBSheetName, "A2", "REF-0099"))

	res := runRemap(t, src, validForm())

	assert.Equal(t, "REF-0099", cellValue(t, res.File, "AB2"))
	assert.Equal(t, "REF-0099", cellValue(t, res.File, "AB3"))
}

func TestRemap_RejectsInvalidForm(t *testing.T) {
	src := buildSource(t, []map[string]interface{}{goodRow()})
	r := NewRemapper(nil)

	cases := []struct {
		form model.RemapForm
		want error
	}{
		{model.RemapForm{MAWB: "12345678901", FlightNo: "CA1"}, ErrInvalidMAWB},
		{model.RemapForm{MAWB: "", FlightNo: "CA1"}, ErrInvalidMAWB},
		{model.RemapForm{MAWB: "123-4567890", FlightNo: "CA1"}, ErrInvalidMAWB},
		{model.RemapForm{MAWB: "123-45678901"}, ErrMissingFlightNo},
		{model.RemapForm{MAWB: "123-45678901", FlightNo: "CA1", Airport: model.AirportDFW}, ErrInvalidAirport},
	}
	for _, tc := range cases {
		res, err := r.Remap(src, buildTemplate(t), tc.form)
		assert.ErrorIs(t, err, tc.want)
		assert.Nil(t, res)
		assert.True(t, IsInputError(err))
	}
}

func TestCheckUploadName(t *testing.T) {
	assert.NoError(t, CheckUploadName("manifest.xlsx"))
	assert.NoError(t, CheckUploadName("MANIFEST.XLSX"))
	assert.ErrorIs(t, CheckUploadName("manifest.xls"), ErrInvalidFileType)
	assert.ErrorIs(t, CheckUploadName("manifest.csv"), ErrInvalidFileType)
	assert.ErrorIs(t, CheckUploadName("xlsx"), ErrInvalidFileType)
}

func TestCellPresent(t *testing.T) {
	assert.False(t, Cell{}.Present())
	assert.False(t, Cell{Value: "0", Kind: KindNumber}.Present())
	assert.False(t, Cell{Value: "0.0", Kind: KindNumber}.Present())
	assert.False(t, Cell{Value: "0", Kind: KindBool}.Present())
	assert.True(t, Cell{Value: "0", Kind: KindString}.Present())
	assert.True(t, Cell{Value: "1", Kind: KindBool}.Present())
	assert.True(t, Cell{Value: "7", Kind: KindNumber}.Present())
}
