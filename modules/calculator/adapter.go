package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/AlanMaria/sit737-2025-prac4p/domain/calculation"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// calculatorAdapter wraps ServiceContainer for type-safe cross-module communication.
type calculatorAdapter struct {
	container mono.ServiceContainer
}

// NewCalculatorAdapter creates a new adapter for the calculator services.
// container is the ServiceContainer received via SetDependencyServiceContainer.
func NewCalculatorAdapter(container mono.ServiceContainer) CalculatorPort {
	if container == nil {
		panic("calculator adapter requires non-nil ServiceContainer")
	}
	return &calculatorAdapter{container: container}
}

// Calculate runs an operation through the calculate service.
func (a *calculatorAdapter) Calculate(ctx context.Context, op calculation.Operation, num1, num2 float64) (float64, error) {
	req := CalculateRequest{Operation: op, Num1: num1, Num2: num2}
	var resp CalculateResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceCalculate,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return 0, fmt.Errorf("calculate service call failed: %w", err)
	}

	return decodeResponse(resp)
}

// decodeResponse maps a service response back to a value or sentinel error.
func decodeResponse(resp CalculateResponse) (float64, error) {
	if resp.Error != "" {
		if err := calculation.ErrorForTag(resp.Error); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("unknown calculation error: %s", resp.Error)
	}

	value, err := strconv.ParseFloat(resp.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed calculation result %q: %w", resp.Value, err)
	}
	return value, nil
}
