package util

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidateStruct(t *testing.T) {
	type cycle struct {
		Timezone string `validate:"required,timezone"`
	}
	type conf struct {
		Cycle cycle
	}

	if err := ValidateStruct(&conf{Cycle: cycle{Timezone: "Asia/Tokyo"}}); err != nil {
		t.Errorf("valid struct: %v", err)
	}

	err := ValidateStruct(&conf{Cycle: cycle{Timezone: "Mars/Base"}})
	if err == nil || !strings.Contains(err.Error(), "conf.Cycle.Timezone") || !strings.Contains(err.Error(), "timezone") {
		t.Fatalf("err = %v", err)
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		t.Error("validation errors should stay unwrappable")
	}
}
