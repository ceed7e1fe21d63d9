package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Submission is one contact form entry. It lives for a single request only.
type Submission struct {
	Name    string `json:"name" validate:"required,notblank"`
	Email   string `json:"email" validate:"required,notblank"`
	Message string `json:"message" validate:"required,notblank"`
}

// ValidationError reports a malformed or incomplete submission.
type ValidationError struct {
	Fields []string
	msg    string
}

func (e *ValidationError) Error() string {
	return e.msg
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// ParseSubmission decodes a body holding exactly one JSON object and validates it.
func ParseSubmission(r io.Reader) (Submission, error) {
	var s Submission
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return Submission{}, &ValidationError{msg: fmt.Sprintf("invalid request body: %s", err.Error())}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Submission{}, &ValidationError{msg: "invalid request body: unexpected data after the JSON object"}
	}

	return s, s.Validate()
}

// Validate checks that name, email and message are present and not blank.
func (s Submission) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{msg: err.Error()}
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}

	return &ValidationError{
		Fields: fields,
		msg:    fmt.Sprintf("missing required fields: %s", strings.Join(fields, ", ")),
	}
}
