package api

import (
	"encoding/json"
	"math"

	"github.com/AlanMaria/sit737-2025-prac4p/domain/calculation"
)

// Response messages. These strings are part of the public contract.
const (
	MsgInvalidInput      = "Invalid input numbers"
	MsgDivisionByZero    = "Cannot divide by zero"
	MsgInvalidOperation  = "Error: Invalid operation"
	MsgCalculationFailed = "Calculation failed"
	MsgFetchFailed       = "Failed to fetch data"
)

// OperationResponse is the HTTP response for an arithmetic operation.
type OperationResponse struct {
	Operation calculation.Operation `json:"operation"`
	Num1      float64               `json:"num1"`
	Num2      float64               `json:"num2"`
	Result    ResultValue           `json:"result"`
}

// ResultValue is either a number or an error message.
// Unknown operations still answer 200 with the message in the result field.
type ResultValue struct {
	number    float64
	message   string
	isMessage bool
}

// NumberResult wraps a computed value.
func NumberResult(v float64) ResultValue {
	return ResultValue{number: v}
}

// MessageResult wraps an error message.
func MessageResult(msg string) ResultValue {
	return ResultValue{message: msg, isMessage: true}
}

// Number returns the value and whether the result is numeric.
func (r ResultValue) Number() (float64, bool) {
	return r.number, !r.isMessage
}

// String returns the message, or "" for numeric results.
func (r ResultValue) String() string {
	return r.message
}

// MarshalJSON encodes the number or message. Non-finite numbers become null.
func (r ResultValue) MarshalJSON() ([]byte, error) {
	if r.isMessage {
		return json.Marshal(r.message)
	}
	if math.IsNaN(r.number) || math.IsInf(r.number, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(r.number)
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
