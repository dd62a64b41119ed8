package dto

import (
	"strings"
	"sync"

	"github.com/SscSPs/rating_registry/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the rating notation tags
// ("moodys", "sp_fitch") registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		mustRegister(v, "moodys", domain.ValidMoodysNotation)
		mustRegister(v, "sp_fitch", domain.ValidSPNotation)
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, valid func(string) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		// Blank notations mean "not rated by this agency".
		return strings.TrimSpace(s) == "" || valid(s)
	})
	if err != nil {
		panic(err)
	}
}

// ValidateStruct checks the struct tags of a request DTO.
func ValidateStruct(s any) error {
	return Validator().Struct(s)
}
