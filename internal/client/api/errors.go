package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/splitbill/pkg/api"
)

// Error представляет ошибку удаленного API: статус и тело ответа
// без какой-либо доменной интерпретации (кроме 401, см. client.go)
type Error struct {
	Message string // человекочитаемое сообщение сервера, если было
	Body    string // сырое тело ответа
	Status  int    // HTTP статус
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Body)
}

// newError строит *Error из статуса и тела, пытаясь достать сообщение
// из стандартного ErrorResponse
func newError(status int, body []byte) *Error {
	apiErr := &Error{
		Status: status,
		Body:   string(body),
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Message != "":
			apiErr.Message = errResp.Message
		case errResp.Detail != "":
			apiErr.Message = errResp.Detail
		case errResp.Error != "":
			apiErr.Message = errResp.Error
		}
	}

	return apiErr
}

// IsUnauthorized сообщает, является ли err ошибкой 401
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
