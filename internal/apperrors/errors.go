// Package apperrors описывает классы ошибок сервиса и их HTTP-статусы.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind класс ошибки.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindGone
)

var statuses = map[Kind]int{
	KindInternal:        http.StatusInternalServerError,
	KindValidation:      http.StatusBadRequest,
	KindUnauthenticated: http.StatusUnauthorized,
	KindForbidden:       http.StatusForbidden,
	KindNotFound:        http.StatusNotFound,
	KindConflict:        http.StatusConflict,
	KindGone:            http.StatusGone,
}

// Status HTTP-статус класса.
func (k Kind) Status() int {
	if s, ok := statuses[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Error ошибка с классом и сообщением для клиента.
// Err хранит причину, она попадает только в лог.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает по классу, чтобы работало errors.Is(err, apperrors.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Образцы для errors.Is.
var (
	ErrValidation      = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated, Message: "Unauthorized"}
	ErrForbidden       = &Error{Kind: KindForbidden, Message: "Operation not allowed"}
	ErrNotFound        = &Error{Kind: KindNotFound, Message: "not found"}
	ErrConflict        = &Error{Kind: KindConflict, Message: "conflict"}
	ErrGone            = &Error{Kind: KindGone, Message: "gone"}
	ErrInternal        = &Error{Kind: KindInternal, Message: "Internal Server Error"}
)

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Internal оборачивает причину. Клиент увидит только общее сообщение.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal Server Error", Err: err}
}

// Validation ошибка проверки с картой «путь поля → сообщения».
func Validation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// Unauthenticated 401.
func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message)
}

// Forbidden 403.
func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

// NotFound 404.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Conflict 409.
func Conflict(message string, err error) *Error {
	return &Error{Kind: KindConflict, Message: message, Err: err}
}

// Gone 410.
func Gone(message string) *Error {
	return New(KindGone, message)
}

// From приводит любую ошибку к *Error. Неизвестные ошибки считаются внутренними.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// KindOf класс ошибки err.
func KindOf(err error) Kind {
	return From(err).Kind
}
