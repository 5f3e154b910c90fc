package excel

import (
	"fmt"
	"strconv"
)

// MaxColumnIndex xlsx 最大列（XFD）的 0-based 下标
const MaxColumnIndex = 16383

// ColumnToIndex 列字母转 0-based 下标：A->0, Z->25, AA->26
func ColumnToIndex(col string) (int, error) {
	if col == "" {
		return 0, fmt.Errorf("invalid column %q", col)
	}
	n := 0
	for i := 0; i < len(col); i++ {
		ch := col[i]
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column %q", col)
		}
		n = n*26 + int(ch-'A') + 1
		if n-1 > MaxColumnIndex {
			return 0, fmt.Errorf("column %q out of range", col)
		}
	}
	return n - 1, nil
}

// IndexToColumn 0-based 下标转列字母，越界返回空串
func IndexToColumn(index int) string {
	if index < 0 || index > MaxColumnIndex {
		return ""
	}
	var buf [3]byte
	i := len(buf)
	for index >= 0 {
		i--
		buf[i] = byte('A' + index%26)
		index = index/26 - 1
	}
	return string(buf[i:])
}

// mustColumn 用于静态表中的列字母
func mustColumn(col string) int {
	idx, err := ColumnToIndex(col)
	if err != nil {
		panic(err)
	}
	return idx
}

// cellName 列字母 + 1-based 行号
func cellName(col string, row int) string {
	return col + strconv.Itoa(row)
}
