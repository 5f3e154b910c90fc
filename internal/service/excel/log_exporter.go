package excel

import (
	"github.com/xuri/excelize/v2"

	"pgatool/internal/model"
	"pgatool/internal/parser"
)

// ExportLogRows 把（筛选后的）日志表格导出为工作簿：表头 + 数据行
func ExportLogRows(v parser.Variant, rows []model.LogRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", v.SheetName); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(v.Header))
	for i, h := range v.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(v.SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		_ = f.SetRowStyle(v.SheetName, 1, 1, headerStyle)
	}

	for i, r := range rows {
		values := r.Values()
		cells := make([]interface{}, len(values))
		for j, s := range values {
			cells[j] = s
		}
		if err := f.SetSheetRow(v.SheetName, cellName("A", i+2), &cells); err != nil {
			f.Close()
			return nil, err
		}
	}

	_ = f.SetColWidth(v.SheetName, "A", "A", 20)
	_ = f.SetColWidth(v.SheetName, "B", "E", 18)
	return f, nil
}
