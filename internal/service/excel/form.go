package excel

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"pgatool/internal/model"
)

var mawbRe = regexp.MustCompile(`^\d{3}-\d{8}$`)

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("mawb", func(fl validator.FieldLevel) bool {
		return mawbRe.MatchString(fl.Field().String())
	})
	return v
}

// CheckUploadName 只接受 .xlsx
func CheckUploadName(name string) error {
	if !strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return ErrInvalidFileType
	}
	return nil
}

// ValidateRemapForm 校验表单；按字段顺序返回第一个错误
func ValidateRemapForm(form model.RemapForm) error {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "MAWB":
			return ErrInvalidMAWB
		case "FlightNo":
			return ErrMissingFlightNo
		case "Airport":
			return ErrInvalidAirport
		}
	}
	return err
}
