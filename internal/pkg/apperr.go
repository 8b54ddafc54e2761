package pkg

import "net/http"

// AppError 业务错误，由 errors 中间件统一映射成 HTTP 响应
type AppError struct {
	Status  int
	Message string
	Fields  map[string][]string // 仅校验错误携带
}

func (e *AppError) Error() string { return e.Message }

func NotFound(msg string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: msg}
}

func DuplicateKey(msg string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: msg}
}

func ValidationFailed(fields map[string][]string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: "validation failed", Fields: fields}
}

func UploadFailure(msg string) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: msg}
}

func BadRequest(msg string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: msg}
}
