package v1

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// buildContentDisposition ASCII 兜底文件名 + RFC 5987 filename*
func buildContentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s",
		asciiFallback(filename), url.PathEscape(filename))
}

func asciiFallback(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// sendWorkbook 先写入内存，成功后再下发响应头
func sendWorkbook(c *gin.Context, filename string, f *excelize.File) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	c.Header("Content-Disposition", buildContentDisposition(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	return nil
}
