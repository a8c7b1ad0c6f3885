package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"tripcraft/internal/models"
)

// validateDateOnly validates that a string is a calendar date in YYYY-MM-DD form
func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateOnlyLayout, fl.Field().String())
	return err == nil
}

// validateRole validates that a string is a known collaboration role
func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.RoleOwner, models.RoleAdmin, models.RoleEdit, models.RoleViewer:
		return true
	}
	return false
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateonly", validateDateOnly)
		_ = v.RegisterValidation("triprole", validateRole)
	}
}
