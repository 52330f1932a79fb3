// Package bind decodes and validates request bodies
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "reduce/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// MaxJSONBytes caps a JSON body
const MaxJSONBytes = 1 << 20

type validatorSvc struct {
	v     *validator.Validate
	trans ut.Translator
}

var get = sync.OnceValue(func() *validatorSvc {
	enLoc := en.New()
	trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	short(v, trans, "min", "{0} must be at least {1}")
	short(v, trans, "max", "{0} must be at most {1}")
	short(v, trans, "datetime", "{0} must look like {1}")
	return &validatorSvc{v: v, trans: trans}
})

// jsonName reports fields by their json key
func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func short(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// ParseJSON decodes exactly one JSON document into T and validates it
// unknown fields are an error
func ParseJSON[T any](r *http.Request) (T, error) {
	var zero T
	if r.Body == nil {
		r.Body = http.NoBody
	}
	defer func() { _ = r.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxJSONBytes+1))
	if err != nil {
		return zero, perr.Wrap(err, perr.ErrorCodeJSON, "read body")
	}
	if len(body) > MaxJSONBytes {
		return zero, perr.JSONErrf("body exceeds %d bytes", MaxJSONBytes)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return zero, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate checks v against its validate tags
// the first failure becomes an ErrorCodeValidation error with its field path
func Validate(v any) error {
	err := get().v.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "validator misuse")
	}
	fe := verrs[0]
	return perr.WithField(perr.Validationf("%s", fe.Translate(get().trans)), fieldPath(fe))
}

// fieldPath drops the root struct name: SubmitInput.rows[1].start_time -> rows[1].start_time
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}
