package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Events must fall within a sane calendar range so typos like year 20251
// are rejected before any row is written.
const (
	MinEventYear = 2000
	MaxEventYear = 2100
)

func oneOf(fl validator.FieldLevel) bool {
	matches := strings.Split(fl.Param(), " ")
	value := fl.Field().String()
	for _, match := range matches {
		if match == value {
			return true
		}
	}
	return false
}

func saneYear(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	year := t.Year()
	return year >= MinEventYear && year <= MaxEventYear
}

// RegisterValidation Inspiration: https://blog.logrocket.com/gin-binding-in-go-a-tutorial-with-examples/
func RegisterValidation() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("error getting validation engine")
	}
	if err := v.RegisterValidation("oneOf", oneOf); err != nil {
		return err
	}
	return v.RegisterValidation("saneYear", saneYear)
}
