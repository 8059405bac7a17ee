package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

// FieldError is one entry of a 422 response, shaped as {loc, msg, type}
type FieldError struct {
	Loc  []interface{} `json:"loc"`
	Msg  string        `json:"msg"`
	Type string        `json:"type"`
}

// MessageFunc renders the human-readable message for a failed rule
type MessageFunc func(fe validator.FieldError) string

// Validator wraps validator.Validate with JSON field names, the phone rule
// and per-tag messages.
type Validator struct {
	validate *validator.Validate
	messages map[string]MessageFunc
}

// New creates a validator with the shared rules registered
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("phone", validatePhone)

	return &Validator{
		validate: v,
		messages: map[string]MessageFunc{
			"required": func(validator.FieldError) string { return "field required" },
			"phone":    func(validator.FieldError) string { return "Invalid phone number" },
			"email":    func(validator.FieldError) string { return "value is not a valid email address" },
			"uuid":     func(validator.FieldError) string { return "value is not a valid uuid" },
			"min": func(fe validator.FieldError) string {
				return fmt.Sprintf("ensure this value has at least %s items or is at least %s", fe.Param(), fe.Param())
			},
		},
	}
}

// RegisterStructValidation registers a cross-field rule for the given types
func (v *Validator) RegisterStructValidation(fn validator.StructLevelFunc, types ...interface{}) {
	v.validate.RegisterStructValidation(fn, types...)
}

// RegisterMessage sets the message used for tag
func (v *Validator) RegisterMessage(tag string, fn MessageFunc) {
	v.messages[tag] = fn
}

// Struct validates s and returns *Error on rule violations
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Loc:  location(fe.Namespace()),
			Msg:  v.message(fe),
			Type: "value_error." + fe.Tag(),
		})
	}
	return out
}

func (v *Validator) message(fe validator.FieldError) string {
	if fn, ok := v.messages[fe.Tag()]; ok {
		return fn(fe)
	}
	return fmt.Sprintf("failed on the %q rule", fe.Tag())
}

// Error is returned for payloads that fail validation (HTTP 422)
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%v: %s", f.Loc, f.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// DecodeError wraps a JSON decoding failure as a validation error
func DecodeError(err error) *Error {
	return &Error{Fields: []FieldError{{
		Loc:  []interface{}{"body"},
		Msg:  err.Error(),
		Type: "value_error.jsondecode",
	}}}
}

// IsValidPhoneNumber reports whether value parses as an international
// number that is both possible and valid for its region.
func IsValidPhoneNumber(value string) bool {
	num, err := phonenumbers.Parse(value, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(num) && phonenumbers.IsValidNumber(num)
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsValidPhoneNumber(fl.Field().String())
}

// location turns "Action[pkg.T].input.data.passengers[0].phone_number"
// into ["body", "input", "data", "passengers", 0, "phone_number"].
func location(namespace string) []interface{} {
	loc := []interface{}{"body"}

	rest := trimRoot(namespace)
	if rest == "" {
		return loc
	}

	for _, part := range strings.Split(rest, ".") {
		name, index, ok := strings.Cut(part, "[")
		loc = append(loc, name)
		if ok {
			idx := strings.TrimSuffix(index, "]")
			if n, err := strconv.Atoi(idx); err == nil {
				loc = append(loc, n)
			} else {
				loc = append(loc, idx)
			}
		}
	}
	return loc
}

// trimRoot drops the top-level type name, which may itself contain dots
// inside generic brackets.
func trimRoot(namespace string) string {
	depth := 0
	for i, r := range namespace {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case '.':
			if depth == 0 {
				return namespace[i+1:]
			}
		}
	}
	return ""
}
