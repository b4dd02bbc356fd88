package errors

import (
	"errors"
	"fmt"
)

// storeError is satisfied by record-store client errors without importing the
// client package here.
type storeError interface {
	StatusCode() int
	ErrorType() string
}

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	StoreStatus int    `json:"store_status,omitempty"`
	StoreType   string `json:"store_type,omitempty"`
}

// Dump flattens an error chain for structured logging.
func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var se storeError
	if errors.As(err, &se) {
		d.StoreStatus = se.StatusCode()
		d.StoreType = se.ErrorType()
	}

	return d
}
