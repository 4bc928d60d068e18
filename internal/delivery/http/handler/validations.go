package handler

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
)

var validationsOnce sync.Once

// RegisterValidations adds the swipe action rule to gin's validator so the
// binding layer rejects malformed actions before the use case runs.
func RegisterValidations() {
	validationsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("swipeaction", func(fl validator.FieldLevel) bool {
				_, err := domain.ParseSwipeAction(fl.Field().String())
				return err == nil
			})
		}
	})
}
