package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"habit_keep/internal/model"
)

// maxBodyBytes はリクエストボディの上限サイズ
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。
// 未知のフィールドや複数のJSON値を含むボディは ErrInvalidInput になります。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return fmt.Errorf("%w: empty request body", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty request body", model.ErrInvalidInput)
		}
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: request body must contain a single JSON object", model.ErrInvalidInput)
	}
	return nil
}

// DecodeAndValidate はボディをデコードし、validate タグで検証します。
// 失敗した場合はそのままレスポンスに使える *model.AppError を返します。
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := DecodeJSONBody(w, r, dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", err)
	}
	return ValidateStruct(dst)
}
