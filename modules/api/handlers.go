package api

import (
	"errors"

	"github.com/AlanMaria/sit737-2025-prac4p/domain/calculation"
	"github.com/AlanMaria/sit737-2025-prac4p/modules/calculator"
	"github.com/AlanMaria/sit737-2025-prac4p/modules/relay"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	calculator calculator.CalculatorPort
	relay      relay.RelayPort
	logger     types.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(calc calculator.CalculatorPort, rel relay.RelayPort, logger types.Logger) *Handlers {
	return &Handlers{
		calculator: calc,
		relay:      rel,
		logger:     logger,
	}
}

// Operation handles GET /:operation?num1=&num2=.
func (h *Handlers) Operation(c *fiber.Ctx) error {
	op := calculation.Operation(utils.CopyString(c.Params("operation")))
	rawNum1 := c.Query("num1")
	rawNum2 := c.Query("num2")
	logger := requestLogger(c, h.logger)

	num1, err1 := calculation.ParseOperand(rawNum1)
	num2, err2 := calculation.ParseOperand(rawNum2)
	if err1 != nil || err2 != nil {
		logger.Error("Invalid input", "num1", rawNum1, "num2", rawNum2)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: MsgInvalidInput})
	}

	result, err := h.calculator.Calculate(c.UserContext(), op, num1, num2)
	switch {
	case errors.Is(err, calculation.ErrDivisionByZero):
		logger.Error("Division by zero", "operation", string(op), "num1", num1, "num2", num2)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: MsgDivisionByZero})

	case errors.Is(err, calculation.ErrInvalidOperation):
		logger.Info("Operation completed",
			"operation", string(op), "num1", num1, "num2", num2, "result", MsgInvalidOperation)
		return c.JSON(OperationResponse{
			Operation: op,
			Num1:      num1,
			Num2:      num2,
			Result:    MessageResult(MsgInvalidOperation),
		})

	case err != nil:
		logger.Error("Calculation failed",
			"operation", string(op), "num1", num1, "num2", num2, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: MsgCalculationFailed})
	}

	logger.Info("Operation completed",
		"operation", string(op), "num1", num1, "num2", num2, "result", result)
	return c.JSON(OperationResponse{
		Operation: op,
		Num1:      num1,
		Num2:      num2,
		Result:    NumberResult(result),
	})
}

// ExternalAPI handles GET /external-api by relaying the upstream JSON body.
func (h *Handlers) ExternalAPI(c *fiber.Ctx) error {
	logger := requestLogger(c, h.logger)

	body, err := h.relay.FetchExternal(c.UserContext())
	if err != nil {
		logger.Error("Error calling external API", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: MsgFetchFailed})
	}

	logger.Info("External API request successful")
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}
