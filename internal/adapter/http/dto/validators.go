package dto

import (
	"reflect"
	"strings"

	"wager-tracker/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("wager_side", validateSide)
		_ = v.RegisterValidation("wager_result", validateResult)
	}
}

// validateSide accepts A or B, case-insensitively.
func validateSide(fl validator.FieldLevel) bool {
	_, err := domain.ParseSide(fl.Field().String())
	return err == nil
}

// validateResult accepts A, B or VOID, case-insensitively.
func validateResult(fl validator.FieldLevel) bool {
	_, err := domain.ParseResult(fl.Field().String())
	return err == nil
}

// TrimStrings trims whitespace from every exported string field (including
// *string) of a struct pointer.
func TrimStrings(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	trimFields(rv.Elem())
}

func trimFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			if elem := f.Elem(); elem.Kind() == reflect.String {
				elem.SetString(strings.TrimSpace(elem.String()))
			}
		}
	}
}
