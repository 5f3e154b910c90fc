package excel

import "unicode/utf8"

// validateRow 校验刚写入的目标列，返回提示信息（不阻断）
func validateRow(row *outputRow) []string {
	var msgs []string

	if c := row.get(colManufactureAddress); c.Present() {
		if n := utf8.RuneCountInString(c.Value); n < 3 || n > 255 {
			msgs = append(msgs, msgAddress)
		}
	}

	if c := row.get(colManufactureName); c.Present() {
		if n := utf8.RuneCountInString(c.Value); n < 3 || n > 100 {
			msgs = append(msgs, msgName)
		}
	}

	zip := row.get(colManufactureZip)
	if !zip.Present() || zip.Value == "000000" || utf8.RuneCountInString(zip.Value) != 6 {
		msgs = append(msgs, msgZip)
	}

	return msgs
}
