package service

import (
	"errors"

	"habit_keep/internal/model"
)

// internalError はストレージ障害などをクライアント向けの 500 エラーに包みます。
// 原因が ErrStorage を含まない場合でも 500 になるよう ErrInternalServer を付与します。
func internalError(message string, err error) error {
	if !errors.Is(err, model.ErrStorage) {
		err = errors.Join(model.ErrInternalServer, err)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", err)
}

func userNotFound() error {
	return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "user_id", model.ErrNotFound)
}

func habitNotFound() error {
	return model.NewAppError("HABIT_NOT_FOUND", "習慣が見つかりません。", "habit_id", model.ErrNotFound)
}

func assignmentNotFound() error {
	return model.NewAppError("ASSIGNMENT_NOT_FOUND", "有効な習慣の割り当てが見つかりません。", "assignment_id", model.ErrNotFound)
}

func invalidDate(field string) error {
	return model.NewAppError("INVALID_DATE", "日付は YYYY-MM-DD 形式で指定してください。", field, model.ErrInvalidDate)
}
