package customer

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	MsgFieldsRequired = "All fields are required"
	MsgAdharLength    = "Adhar Number must be 12 digits"
	MsgMobileLength   = "Mobile Number must be 10 digits"
)

var validate = validator.New()

// Validate checks a registration. Presence of every field is checked
// before the adhar length, which is checked before the mobile length;
// only the first failing rule is reported.
func (r Registration) Validate() error {
	var fieldErrs validator.ValidationErrors
	if err := validate.Struct(r); err != nil && !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return &ValidationError{Message: MsgFieldsRequired}
		}
	}
	if r.adharNotString || failed(fieldErrs, "AdharNumber") {
		return &ValidationError{Message: MsgAdharLength}
	}
	if r.mobileNotString || failed(fieldErrs, "MobileNumber") {
		return &ValidationError{Message: MsgMobileLength}
	}
	if len(fieldErrs) > 0 {
		return &ValidationError{Message: fieldErrs[0].Error()}
	}
	return nil
}

func failed(errs validator.ValidationErrors, field string) bool {
	for _, fe := range errs {
		if fe.StructField() == field {
			return true
		}
	}
	return false
}
