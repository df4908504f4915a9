package helper

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"book-recommendation-api/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	setupOnce  sync.Once
	setupErr   error
	engine     *validator.Validate
	translator ut.Translator
)

// SetupValidator registers the custom rules and English messages on gin's
// binding validator. It runs once per process.
func SetupValidator() (*validator.Validate, ut.Translator, error) {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}

		v.RegisterTagNameFunc(fieldName)

		rules := map[string]validator.Func{
			"notblank": validators.NotBlank,
			"trimmax":  trimMax,
			"password": password,
			"rating":   ratingValue,
			"pubyear":  publishedYear,
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				setupErr = err
				return
			}
		}

		english := en.New()
		trans, _ := ut.New(english, english).GetTranslator("en")
		if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
			setupErr = err
			return
		}

		messages := map[string]string{
			"notblank": "{0} cannot be empty",
			"trimmax":  "{0} cannot exceed {1} characters",
			"password": "{0} must be 8 to 64 characters and contain at least 1 lowercase, 1 uppercase, 1 digit and 1 special character",
			"rating":   "{0} must be one of 0.0, 0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0, 4.5, 5.0",
			"pubyear":  "{0} must be between 0 and the current year",
		}
		for tag, text := range messages {
			if err := registerTranslation(v, trans, tag, text); err != nil {
				setupErr = err
				return
			}
		}

		engine = v
		translator = trans
	})
	return engine, translator, setupErr
}

func registerTranslation(v *validator.Validate, trans ut.Translator, tag, text string) error {
	return v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(tag, fe.Field(), fe.Param())
			if err != nil {
				return fe.Error()
			}
			return t
		},
	)
}

// fieldName reports fields by their wire name.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func trimMax(fl validator.FieldLevel) bool {
	max, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return models.TrimmedLenWithin(fl.Field().String(), max)
}

func password(fl validator.FieldLevel) bool {
	return models.ValidatePassword(fl.Field().String()) == nil
}

func ratingValue(fl validator.FieldLevel) bool {
	_, err := models.ParseRatingValue(fl.Field().String())
	return err == nil
}

func publishedYear(fl validator.FieldLevel) bool {
	return models.ValidPublishedYear(int(fl.Field().Int()))
}
