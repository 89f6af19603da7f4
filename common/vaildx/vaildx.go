package vaildx

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validator *validator.Validate
	Trans     ut.Translator
)

func init() {
	Validator = validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	Trans, _ = uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(Validator, Trans)
}
