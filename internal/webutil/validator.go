package webutil

import (
	"errors"
	"log"
	"reflect"
	"regexp"
	"strings"

	"habit_keep/internal/model"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var fieldNameTranslations = map[string]string{
	"name":        "名前",
	"email":       "メールアドレス",
	"password":    "パスワード",
	"description": "説明",
	"category":    "カテゴリ",
	"habit_id":    "習慣ID",
	"frequency":   "頻度",
	"goal":        "目標日数",
	"target_time": "目標時刻",
	"weekdays":    "曜日",
	"notes":       "メモ",
	"policy":      "policy",
}

func translatedField(fe validator.FieldError) string {
	// dive の場合は "weekdays[0]" になる
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if t, ok := fieldNameTranslations[name]; ok {
		return t
	}
	return name
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := Validator.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	}); err != nil {
		log.Fatal(err)
	}
	if err := Validator.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, ok := model.ParseWeekday(fl.Field().String())
		return ok
	}); err != nil {
		log.Fatal(err)
	}

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// registerTranslation はフィールド名を日本語にしてメッセージを登録します。
	// withParam の場合 {1} にタグのパラメータが入ります。
	registerTranslation := func(tag, msg string, withParam bool) {
		err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			params := []string{translatedField(fe)}
			if withParam {
				params = append(params, fe.Param())
			}
			t, _ := ut.T(tag, params...)
			return t
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	registerTranslation("required", "{0}は必須項目です。", false)
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。", false)
	registerTranslation("oneof", "{0}は[{1}]のいずれかを指定してください。", true)
	registerTranslation("hhmm", "{0}は HH:MM 形式で指定してください。", false)
	registerTranslation("weekday", "{0}には曜日名 (mon, tuesday など) を指定してください。", false)
	registerTranslation("gt", "{0}は{1}より大きい値を指定してください。", true)
	Validator.RegisterTranslation("min", Trans, func(ut ut.Translator) error {
		return ut.Add("min", "{0}は{1}以上で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("min", translatedField(fe), fe.Param())
		return t
	})
	Validator.RegisterTranslation("max", Trans, func(ut ut.Translator) error {
		return ut.Add("max", "{0}は{1}以下で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("max", translatedField(fe), fe.Param())
		return t
	})
}

// ValidateStruct は validate タグで検証し、最初のエラーを日本語の AppError にして返します。
func ValidateStruct(s any) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewValidationErrorResponse(validationErrors)
	}
	// InvalidValidationError など、呼び出し側の誤り
	return model.NewAppError("VALIDATION_ERROR", "入力値の検証に失敗しました。", "", errors.Join(model.ErrInternalServer, err))
}

// NewValidationErrorResponse は最初のエラーを代表としてクライアントに返します。
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	firstErr := errs[0]
	field := firstErr.Field()
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	return model.NewAppError(
		"VALIDATION_ERROR",
		firstErr.Translate(Trans),
		field,
		model.ErrInvalidInput,
	)
}
