/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrInvalidDate       ErrorCode = "INVALID_DATE"
	ErrInvalidMonth      ErrorCode = "INVALID_MONTH"
	ErrInvalidAmount     ErrorCode = "INVALID_AMOUNT"
	ErrInvalidType       ErrorCode = "INVALID_TYPE"
	ErrInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	ErrInvalidRate       ErrorCode = "INVALID_RATE"
	ErrAccountNotFound   ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrWrongInput        ErrorCode = "WRONG_INPUT"
)

// Messages shown to the user for each code.
const (
	MsgInvalidInput      = "Invalid input."
	MsgInvalidDate       = "Invalid date."
	MsgInvalidMonth      = "Invalid month."
	MsgInvalidAmount     = "Invalid amount. Must be greater than zero."
	MsgInvalidType       = "Invalid transaction type. Use D for Deposit or W for Withdrawal."
	MsgInsufficientFunds = "Insufficient balance for withdrawal."
	MsgInvalidRate       = "Invalid interest rate. Must be between 0 and 100."
	MsgAccountNotFound   = "Account not found."
	MsgWrongInput        = "Wrong input."
)

// APIError is the coded error returned by every failing bank operation.
// Message is the text shown to the user; Details carries the offending input.
type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code ErrorCode, message string, details interface{}) APIError {
	logrus.WithFields(logrus.Fields{"code": code, "details": details}).Debug(message)
	return APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// CodeOf returns the code carried by err, or "" when err is not an APIError.
func CodeOf(err error) ErrorCode {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

// Message returns the user-facing text of err. Errors that are not coded
// fall back to err.Error().
func Message(err error) string {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func MapErrorToHTTPStatus(err error) int {
	switch CodeOf(err) {
	case ErrAccountNotFound:
		return http.StatusNotFound
	case ErrInsufficientFunds:
		return http.StatusConflict
	case ErrInvalidInput, ErrInvalidDate, ErrInvalidMonth, ErrInvalidAmount,
		ErrInvalidType, ErrInvalidRate, ErrWrongInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
