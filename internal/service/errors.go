package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid    = errors.New("Invalid request parameters")
	ErrUnauthorized    = errors.New("Please log in to continue")
	ErrNotFound        = errors.New("Post not found")
	ErrDataUnavailable = errors.New("Unable to retrieve analytics data. Please try again.")
	UnExpectedError    = errors.New("An unexpected error occurred. Please try again.")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:    BadRequest,
	ErrUnauthorized:    Unauthorized,
	ErrNotFound:        NotFound,
	ErrDataUnavailable: InternalServerError,
	UnExpectedError:    InternalServerError,
}

// ValidationError 调用方参数错误，Message 指明违反的约束
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// CodeOf 返回错误对应的业务码，未登记的错误返回 false
func CodeOf(err error) (int, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return BadRequest, true
	}
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return 0, false
}
