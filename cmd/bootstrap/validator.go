package bootstrap

import (
	"errors"

	"stayhub/internal/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

var ValidatorModule = fx.Module("validator",
	fx.Invoke(RegisterValidators),
)

// RegisterValidators adds the custom binding rules to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return validation.Register(v)
}
