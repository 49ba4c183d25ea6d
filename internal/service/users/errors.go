package users

import "errors"

var (
	// ErrEmptyUserID возвращается, когда не передан ID пользователя
	ErrEmptyUserID = errors.New("user id is required")
)
