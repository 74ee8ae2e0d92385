package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code 錯誤分類, 對應HTTP status
type Code int

const (
	ValidationCode   Code = http.StatusBadRequest
	UnauthorizedCode Code = http.StatusUnauthorized
	NotFoundCode     Code = http.StatusNotFound
	InvalidStateCode Code = http.StatusBadRequest
	InternalCode     Code = http.StatusInternalServerError
)

type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, msg string, err error) *Error {
	return &Error{Code: code, Msg: msg, Err: err}
}

func Validation(msg string) *Error   { return New(ValidationCode, msg) }
func Unauthorized(msg string) *Error { return New(UnauthorizedCode, msg) }
func NotFound(msg string) *Error     { return New(NotFoundCode, msg) }
func InvalidState(msg string) *Error { return New(InvalidStateCode, msg) }

// StatusOf 取出錯誤對應的HTTP status, 非 *Error 一律視為 500
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return int(appErr.Code)
	}
	return http.StatusInternalServerError
}

// MessageOf 取出對外訊息, 內部錯誤不洩漏細節
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Msg
	}
	return "Internal server error."
}
