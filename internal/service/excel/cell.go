package excel

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellKind 单元格值类型（复制时保留）
type CellKind int

const (
	KindString CellKind = iota
	KindNumber
	KindBool
)

// Cell 单元格原始值 + 类型
type Cell struct {
	Value string
	Kind  CellKind
}

// Str 字符串单元格
func Str(v string) Cell {
	return Cell{Value: v, Kind: KindString}
}

// Present 非空且不为数值 0 / 布尔 false
func (c Cell) Present() bool {
	if c.Value == "" {
		return false
	}
	switch c.Kind {
	case KindNumber:
		f, err := strconv.ParseFloat(c.Value, 64)
		return err != nil || f != 0
	case KindBool:
		return c.Value == "1" || strings.EqualFold(c.Value, "true")
	}
	return true
}

// readCell 读取原始值与类型
func readCell(wb *excelize.File, sheet, addr string) (Cell, error) {
	v, err := wb.GetCellValue(sheet, addr, excelize.Options{RawCellValue: true})
	if err != nil {
		return Cell{}, err
	}
	if v == "" {
		return Cell{}, nil
	}
	t, err := wb.GetCellType(sheet, addr)
	if err != nil {
		return Cell{}, err
	}
	return Cell{Value: v, Kind: kindOf(t, v)}, nil
}

func kindOf(t excelize.CellType, v string) CellKind {
	switch t {
	case excelize.CellTypeBool:
		return KindBool
	case excelize.CellTypeNumber:
		return KindNumber
	case excelize.CellTypeUnset:
		// 数值单元格通常不带 t 属性
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			return KindNumber
		}
	}
	return KindString
}

// writeCell 按类型写入
func writeCell(wb *excelize.File, sheet, addr string, c Cell) error {
	switch c.Kind {
	case KindNumber:
		return wb.SetCellDefault(sheet, addr, c.Value)
	case KindBool:
		return wb.SetCellBool(sheet, addr, c.Value == "1" || strings.EqualFold(c.Value, "true"))
	}
	return wb.SetCellStr(sheet, addr, c.Value)
}
