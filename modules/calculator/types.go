package calculator

import (
	"context"

	"github.com/AlanMaria/sit737-2025-prac4p/domain/calculation"
)

// ServiceCalculate is the request-reply service name.
// The framework exposes it as "services.calculator.calculate".
const ServiceCalculate = "calculate"

// CalculateRequest is the request for the calculate service.
type CalculateRequest struct {
	Operation calculation.Operation `json:"operation"`
	Num1      float64               `json:"num1"`
	Num2      float64               `json:"num2"`
}

// toDomain converts the wire request into a dispatcher request.
func (r CalculateRequest) toDomain() calculation.Request {
	return calculation.Request{Operation: r.Operation, Num1: r.Num1, Num2: r.Num2}
}

// CalculateResponse is the response from the calculate service.
// Value is the formatted result so that ±Inf and NaN survive JSON;
// Error holds a calculation tag when the dispatcher refused the request.
type CalculateResponse struct {
	Operation calculation.Operation `json:"operation"`
	Value     string                `json:"value,omitempty"`
	Error     string                `json:"error,omitempty"`
}

// CalculatorPort defines the interface for calculations (hexagonal port).
// Dispatcher refusals come back as calculation sentinel errors.
type CalculatorPort interface {
	Calculate(ctx context.Context, op calculation.Operation, num1, num2 float64) (float64, error)
}
