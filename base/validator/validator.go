package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/escrow/domain"
)

// IsValidAccountId returns is an account id valid or not
func IsValidAccountId(id string) bool {
	return domain.AccountId(id).IsValid()
}

// New returns a validator with the escrow tags registered:
//   accountid: the field is a well formed account id
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("accountid", func(fl validator.FieldLevel) bool {
		return IsValidAccountId(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
