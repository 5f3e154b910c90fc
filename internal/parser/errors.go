package parser

import "errors"

// ErrUnknownVariant 未知的日志来源
var ErrUnknownVariant = errors.New("unknown status log variant")
