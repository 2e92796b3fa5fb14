package checkout

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form is the one-shot contact/shipping form. It is never persisted;
// it exists only for the duration of one checkout attempt.
type Form struct {
	FullName      string `json:"fullName"      validate:"required"`
	PhoneNumber   string `json:"phoneNumber"   validate:"required,phone"`
	Address       string `json:"address"       validate:"required"`
	City          string `json:"city"          validate:"required"`
	ZipCode       string `json:"zipCode"       validate:"required,postcode"`
	Country       string `json:"country"`
	PaymentMethod string `json:"paymentMethod"`
}

// NewForm returns a form with the defaulted, never-validated fields
// filled in.
func NewForm() Form {
	return Form{Country: "Australia", PaymentMethod: "credit-card"}
}

func (f Form) normalized() Form {
	f.FullName = strings.TrimSpace(f.FullName)
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)
	f.Address = strings.TrimSpace(f.Address)
	f.City = strings.TrimSpace(f.City)
	f.ZipCode = strings.TrimSpace(f.ZipCode)
	return f
}

// FieldErrors maps a form field name to its user-facing message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, field+": "+e[field])
	}
	return "invalid checkout form: " + strings.Join(messages, "; ")
}

// Clear drops the error for a field; the UI calls this as soon as the
// visitor edits the field again.
func (e FieldErrors) Clear(field string) {
	delete(e, field)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func validPhone(fl validator.FieldLevel) bool {
	return len(digitsOnly(fl.Field().String())) >= 10
}

func validPostcode(fl validator.FieldLevel) bool {
	n := len(digitsOnly(fl.Field().String()))
	return n >= 4 && n <= 6
}

func newValidator() *validator.Validate {
	v := validator.New()
	// preset rules cannot fail registration
	_ = v.RegisterValidation("phone", validPhone)
	_ = v.RegisterValidation("postcode", validPostcode)
	return v
}

var fieldMessages = map[string]map[string]string{
	"FullName": {
		"required": "Full name is required",
	},
	"PhoneNumber": {
		"required": "Phone number is required",
		"phone":    "Please enter a valid phone number",
	},
	"Address": {
		"required": "Address is required",
	},
	"City": {
		"required": "City is required",
	},
	"ZipCode": {
		"required": "Zip code is required",
		"postcode": "Please enter a valid zip/postal code",
	},
}

var fieldNames = map[string]string{
	"FullName":    "fullName",
	"PhoneNumber": "phoneNumber",
	"Address":     "address",
	"City":        "city",
	"ZipCode":     "zipCode",
}

func validateForm(v *validator.Validate, form Form) FieldErrors {
	err := v.Struct(form.normalized())
	if err == nil {
		return nil
	}
	fieldErrs := FieldErrors{}
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := fieldErr.StructField()
		message, ok := fieldMessages[field][fieldErr.Tag()]
		if !ok {
			message = "Invalid value"
		}
		if _, ok = fieldErrs[fieldNames[field]]; !ok {
			fieldErrs[fieldNames[field]] = message
		}
	}
	return fieldErrs
}
