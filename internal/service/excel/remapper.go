package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pgatool/internal/model"
)

// RemapResult 转换结果
type RemapResult struct {
	File     *excelize.File
	Filename string
	Rows     int              // 输出数据行数（不含表头）
	Issues   []model.RowIssue // 数据质量提示
}

// Remapper TEMU PGA 清单 -> NETCHB 模板 列映射器
type Remapper struct {
	logger *zap.Logger
}

// NewRemapper 创建映射器
func NewRemapper(logger *zap.Logger) *Remapper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Remapper{logger: logger}
}

// RemapFilename 输出文件名
func RemapFilename(mawb string) string {
	return mawb + "_TEMU_NETCHB.xlsx"
}

// Remap 按模板表头生成输出工作簿
// 表单不合法时不做任何处理；行级数据问题只写入 Error Message 列
func (r *Remapper) Remap(src, tmpl *excelize.File, form model.RemapForm) (*RemapResult, error) {
	if err := ValidateRemapForm(form); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrUnreadableUpload
	}
	if tmpl == nil {
		return nil, ErrUnreadableTemplate
	}

	sheets := src.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrUnreadableUpload)
	}
	srcSheet := sheets[0]

	rows, err := src.GetRows(srcSheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableUpload, err)
	}

	mawbCell, err := readMAWBSheetValue(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableUpload, err)
	}

	out := excelize.NewFile()
	if err := out.SetSheetName("Sheet1", OutputSheetName); err != nil {
		return nil, err
	}
	if err := copyTemplateHeader(tmpl, out); err != nil {
		out.Close()
		return nil, err
	}

	result := &RemapResult{
		File:     out,
		Filename: RemapFilename(form.MAWB),
	}

	outRow := 2
	for ri := sourceFirstDataRow; ri < len(rows); ri++ {
		if !hasProbeData(src, srcSheet, rows[ri], ri+1) {
			continue
		}

		row := newOutputRow()
		if mawbCell.Present() {
			row.set(colMAWBSheetValue, Str(mawbCell.Value))
		}
		fillForm(row, form)
		fillMappings(row, src, srcSheet, rows[ri], ri+1)
		for _, fv := range fixedValues {
			row.set(fv.Target, Str(fv.Value))
		}

		if msgs := validateRow(row); len(msgs) > 0 {
			row.set(ErrorColumn, Str(strings.Join(msgs, "; ")))
			result.Issues = append(result.Issues, model.RowIssue{
				SourceRow: ri + 1,
				OutputRow: outRow,
				Messages:  msgs,
			})
		}

		if err := row.flush(out, OutputSheetName, outRow); err != nil {
			out.Close()
			return nil, fmt.Errorf("write row %d: %w", outRow, err)
		}
		outRow++
	}

	lastRow := outRow - 1
	if err := out.SetSheetDimension(OutputSheetName, fmt.Sprintf("A1:%s%d", ErrorColumn, lastRow)); err != nil {
		out.Close()
		return nil, err
	}
	if err := out.SetColWidth(OutputSheetName, "A", TemplateLastColumn, outputColumnWidth); err != nil {
		out.Close()
		return nil, err
	}

	result.Rows = lastRow - 1
	r.logger.Info("remap finished",
		zap.String("mawb", form.MAWB),
		zap.String("airport", string(form.AirportOrDefault())),
		zap.Int("sourceRows", len(rows)),
		zap.Int("outputRows", result.Rows),
		zap.Int("issues", len(result.Issues)),
	)
	return result, nil
}

// readMAWBSheetValue 辅助 sheet “mawb” 的 A2
func readMAWBSheetValue(src *excelize.File) (Cell, error) {
	idx, err := src.GetSheetIndex(MAWBSheetName)
	if err != nil || idx < 0 {
		return Cell{}, nil
	}
	return readCell(src, MAWBSheetName, MAWBSheetCell)
}

// copyTemplateHeader 复制模板第一行 A..DY，并追加错误信息列标题
func copyTemplateHeader(tmpl, out *excelize.File) error {
	sheets := tmpl.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("%w: template has no sheets", ErrUnreadableTemplate)
	}
	last := mustColumn(TemplateLastColumn)
	for i := 0; i <= last; i++ {
		addr := cellName(IndexToColumn(i), 1)
		c, err := readCell(tmpl, sheets[0], addr)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnreadableTemplate, err)
		}
		if c.Value == "" {
			continue
		}
		if err := writeCell(out, OutputSheetName, addr, c); err != nil {
			return err
		}
	}
	return out.SetCellStr(OutputSheetName, cellName(ErrorColumn, 1), ErrorColumnTitle)
}

// hasProbeData 前 11 列任一有值
func hasProbeData(src *excelize.File, sheet string, values []string, excelRow int) bool {
	for i := 0; i < sourceProbeColumns && i < len(values); i++ {
		if values[i] == "" {
			continue
		}
		c, err := readCell(src, sheet, cellName(IndexToColumn(i), excelRow))
		if err == nil && c.Present() {
			return true
		}
	}
	return false
}

func fillForm(row *outputRow, form model.RemapForm) {
	row.set(colMAWBPrefix, Str(form.MAWBPrefix()))
	row.set(colMAWBSerial, Str(form.MAWBSerial()))
	row.set(colFlightCarrier, Str(form.FlightCarrier()))
	row.set(colFlightNumber, Str(form.FlightNumber()))

	if form.HouseBill != "" {
		row.set(colHouseBill, Str(form.HouseBill))
	}
	if form.EntryDate != "" {
		for _, col := range entryDateColumns {
			row.set(col, Str(form.EntryDate))
		}
	}

	for _, lit := range airportBundles[form.AirportOrDefault()] {
		for _, col := range lit.Targets {
			row.set(col, Str(lit.Value))
		}
	}
}

func fillMappings(row *outputRow, src *excelize.File, sheet string, values []string, excelRow int) {
	for _, m := range columnMappings {
		idx := mustColumn(m.Source)
		if idx >= len(values) || values[idx] == "" {
			continue
		}
		c, err := readCell(src, sheet, cellName(m.Source, excelRow))
		if err != nil || !c.Present() {
			continue
		}
		for _, col := range m.Targets {
			row.set(col, c)
		}
	}
}

// outputRow 一行待写入的目标单元格，校验读取的是这里的值
type outputRow struct {
	order []string
	cells map[string]Cell
}

func newOutputRow() *outputRow {
	return &outputRow{cells: make(map[string]Cell)}
}

func (r *outputRow) set(col string, c Cell) {
	if _, ok := r.cells[col]; !ok {
		r.order = append(r.order, col)
	}
	r.cells[col] = c
}

func (r *outputRow) get(col string) Cell {
	return r.cells[col]
}

func (r *outputRow) flush(wb *excelize.File, sheet string, excelRow int) error {
	for _, col := range r.order {
		if err := writeCell(wb, sheet, cellName(col, excelRow), r.cells[col]); err != nil {
			return err
		}
	}
	return nil
}
