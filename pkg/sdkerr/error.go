/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sdkerr

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error is the typed error returned by every engine operation. It keeps the reason of a
// rejection (Code) together with the values that caused it, for audit logging.
type Error struct {
	Code       Code
	Component  Component
	Operation  string
	HTTPStatus int
	Context    map[string]string
	Err        error
}

// New creates an error with the given code wrapping err. A nil err is replaced by the code text.
func New(code Code, err error) *Error {
	if err == nil {
		err = errors.New(string(code))
	}

	return &Error{Code: code, Err: err}
}

// Newf is New with a formatted cause.
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Errorf(format, args...))
}

// WithComponent sets the component that raised the error.
func (e *Error) WithComponent(component Component) *Error {
	e.Component = component

	return e
}

// WithOperation sets the operation that failed.
func (e *Error) WithOperation(operation string) *Error {
	e.Operation = operation

	return e
}

// WithHTTPStatus records the status code of a failed request.
func (e *Error) WithHTTPStatus(status int) *Error {
	e.HTTPStatus = status

	return e
}

// With adds an audit value (mismatched DID, failing kid, offending credential...).
func (e *Error) With(key, value string) *Error {
	if e.Context == nil {
		e.Context = map[string]string{}
	}

	e.Context[key] = value

	return e
}

func (e *Error) Error() string {
	var description []string

	if e.Component != "" {
		description = append(description, "component: "+string(e.Component))
	}

	if e.Operation != "" {
		description = append(description, "operation: "+e.Operation)
	}

	if e.HTTPStatus != 0 {
		description = append(description, fmt.Sprintf("http status: %d", e.HTTPStatus))
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		description = append(description, fmt.Sprintf("%s: %s", k, e.Context[k]))
	}

	return fmt.Sprintf("%s[%s]: %v", e.Code, strings.Join(description, "; "), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by code, so errors.Is(err, sdkerr.New(code, nil)) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Code == e.Code
}

type errorJSON struct {
	Code        Code              `json:"code"`
	Component   Component         `json:"component,omitempty"`
	Operation   string            `json:"operation,omitempty"`
	HTTPStatus  int               `json:"http_status,omitempty"`
	Context     map[string]string `json:"context,omitempty"`
	Description string            `json:"description"`
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(&errorJSON{
		Code:        e.Code,
		Component:   e.Component,
		Operation:   e.Operation,
		HTTPStatus:  e.HTTPStatus,
		Context:     e.Context,
		Description: e.Err.Error(),
	})
}

// CodeOf returns the code of the first *Error in err's chain, or SdkError for anything else.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return SdkError
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// Retryable reports whether a caller may retry the failed operation unchanged.
// Only transport faults qualify; trust failures need the underlying problem fixed first.
func Retryable(err error) bool {
	return HasCode(err, TransportError)
}

// Wrap returns err unchanged when it already is an *Error, otherwise wraps it with code.
func Wrap(code Code, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return New(code, err)
}
