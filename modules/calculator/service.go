package calculator

import (
	"context"
	"strconv"

	"github.com/AlanMaria/sit737-2025-prac4p/domain/calculation"
	"github.com/go-monolith/mono"
)

// calculate handles the calculate service request.
// Dispatcher refusals are returned in the response, not as a Go error.
func (m *CalculatorModule) calculate(_ context.Context, req CalculateRequest, _ *mono.Msg) (CalculateResponse, error) {
	result, err := req.toDomain().Perform()
	if err != nil {
		m.logger.Debug("Calculation refused",
			"operation", req.Operation,
			"num1", req.Num1,
			"num2", req.Num2,
			"reason", calculation.TagOf(err))
		return CalculateResponse{
			Operation: req.Operation,
			Error:     calculation.TagOf(err),
		}, nil
	}

	return CalculateResponse{
		Operation: req.Operation,
		Value:     strconv.FormatFloat(result, 'g', -1, 64),
	}, nil
}
