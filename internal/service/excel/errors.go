package excel

import "errors"

// 输入校验失败：直接提示给用户，不做任何处理
var (
	ErrInvalidFileType = errors.New("Please upload an Excel file (.xlsx format only)")
	ErrInvalidMAWB     = errors.New("MAWB must be in xxx-xxxxxxxx format")
	ErrMissingFlightNo = errors.New("Please enter Flight No")
	ErrInvalidAirport  = errors.New("POE must be one of ORD, JFK, MIA, LAX, SFO")
)

// I/O 失败：提示用户，不重试
var (
	ErrUnreadableUpload    = errors.New("Error reading uploaded file")
	ErrTemplateUnavailable = errors.New("Failed to fetch template file")
	ErrUnreadableTemplate  = errors.New("Error reading template file")
)

// IsInputError 是否属于输入校验类错误
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidFileType) ||
		errors.Is(err, ErrInvalidMAWB) ||
		errors.Is(err, ErrMissingFlightNo) ||
		errors.Is(err, ErrInvalidAirport)
}
