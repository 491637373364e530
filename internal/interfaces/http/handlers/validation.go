package handlers

import (
	"github.com/go-playground/validator/v10"

	"github.com/ridecrew/ridecrew/internal/domain/geo"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
)

// BindingValidations are the custom binding tags used by the request structs
// of this package. They must be registered before the first request is bound.
func BindingValidations() map[string]validator.Func {
	return map[string]validator.Func{
		"department": func(fl validator.FieldLevel) bool {
			return geo.IsDepartmentCode(fl.Field().String())
		},
		"plan_name": func(fl validator.FieldLevel) bool {
			return subscription.PlanName(fl.Field().String()).IsValid()
		},
	}
}
