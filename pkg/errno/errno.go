package errno

import (
	"errors"
	"net/http"
)

// Errno defines the error code logic.
// Status 是对外返回的 HTTP 状态码，Code 是稳定的错误类别编号
type Errno struct {
	Code    int
	Status  int
	Message string

	cause error
}

func (e Errno) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e Errno) Unwrap() error {
	return e.cause
}

// Is 按 Code 比较，使 errors.Is(err, errno.ErrMissingParam) 对 WithMessage/Wrap 的结果也成立
func (e Errno) Is(target error) bool {
	var t Errno
	switch typed := target.(type) {
	case Errno:
		t = typed
	case *Errno:
		t = *typed
	default:
		return false
	}
	return e.Code == t.Code
}

// WithMessage 返回替换了对外消息的副本
func (e Errno) WithMessage(msg string) Errno {
	e.Message = msg
	return e
}

// Wrap 记录内部原因。原因只进日志，不会出现在 Decode 的消息里
func (e Errno) Wrap(cause error) Errno {
	e.cause = cause
	return e
}

// Decode tries to convert an error to (http status, code, public message)
func Decode(err error) (int, int, string) {
	if err == nil {
		return OK.Status, OK.Code, OK.Message
	}

	var typed Errno
	if errors.As(err, &typed) {
		return typed.Status, typed.Code, typed.Message
	}
	var ptr *Errno
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Status, ptr.Code, ptr.Message
	}
	return InternalServerError.Status, InternalServerError.Code, InternalServerError.Message
}

// Common Errors
var (
	OK                  = Errno{Code: 0, Status: http.StatusOK, Message: "Success"}
	InternalServerError = Errno{Code: 10001, Status: http.StatusInternalServerError, Message: "Internal server error"}
)

// Client input errors (20000+)
var (
	ErrMissingParam = Errno{Code: 20101, Status: http.StatusBadRequest, Message: "Parameters monto and voto are required"}
	ErrInvalidParam = Errno{Code: 20102, Status: http.StatusBadRequest, Message: "Invalid parameter"}
)

// Server side errors (30000+)
var (
	ErrUpstreamRead = Errno{Code: 30101, Status: http.StatusInternalServerError, Message: "Error reading proposals from chain"}
	ErrEncoding     = Errno{Code: 30201, Status: http.StatusInternalServerError, Message: "Error encoding transaction"}
	ErrValidation   = Errno{Code: 30301, Status: http.StatusInternalServerError, Message: "Error creating metadata"}
)
