package vendors

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/guregu/null/v5"
)

var requiredMessages = map[string]string{
	"vendorName":    "Vendor name is required",
	"bankAccountNo": "Bank account number is required",
	"bankName":      "Bank name is required",
	"addressLine1":  "Address line 1 is required",
	"city":          "City is required",
	"country":       "Country is required",
	"zipCode":       "ZIP code is required",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (in CreateInput) normalized() CreateInput {
	return CreateInput{
		VendorName:    strings.TrimSpace(in.VendorName),
		BankAccountNo: strings.TrimSpace(in.BankAccountNo),
		BankName:      strings.TrimSpace(in.BankName),
		AddressLine1:  strings.TrimSpace(in.AddressLine1),
		AddressLine2:  strings.TrimSpace(in.AddressLine2),
		City:          strings.TrimSpace(in.City),
		Country:       strings.TrimSpace(in.Country),
		ZipCode:       strings.TrimSpace(in.ZipCode),
	}
}

func (s *Service) validateCreate(in CreateInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = requiredMessages[fe.Field()]
	}
	return newValidationError("These fields are required", fields)
}

func trimPresent(s null.String) null.String {
	if !s.Valid {
		return s
	}
	return null.StringFrom(strings.TrimSpace(s.String))
}

func (in UpdateInput) normalized() UpdateInput {
	return UpdateInput{
		VendorName:    trimPresent(in.VendorName),
		BankAccountNo: trimPresent(in.BankAccountNo),
		BankName:      trimPresent(in.BankName),
		AddressLine1:  trimPresent(in.AddressLine1),
		AddressLine2:  trimPresent(in.AddressLine2),
		City:          trimPresent(in.City),
		Country:       trimPresent(in.Country),
		ZipCode:       trimPresent(in.ZipCode),
	}
}

// requiredFields pairs each non-optional field with its JSON name.
func (in UpdateInput) requiredFields() map[string]null.String {
	return map[string]null.String{
		"vendorName":    in.VendorName,
		"bankAccountNo": in.BankAccountNo,
		"bankName":      in.BankName,
		"addressLine1":  in.AddressLine1,
		"city":          in.City,
		"country":       in.Country,
		"zipCode":       in.ZipCode,
	}
}

// Empty reports whether no field is present.
func (in UpdateInput) Empty() bool {
	if in.AddressLine2.Valid {
		return false
	}
	for _, f := range in.requiredFields() {
		if f.Valid {
			return false
		}
	}
	return true
}

func validateUpdate(in UpdateInput) error {
	if in.Empty() {
		return ErrNoChanges
	}
	fields := make(map[string]string)
	for name, f := range in.requiredFields() {
		if f.Valid && f.String == "" {
			fields[name] = requiredMessages[name]
		}
	}
	if len(fields) > 0 {
		return newValidationError("These fields cannot be empty", fields)
	}
	return nil
}
