// Package calculation holds the arithmetic dispatcher shared by the calculator
// service and the HTTP layer.
package calculation

// Operation is the name of an arithmetic operation, matched case-sensitively.
type Operation string

// Supported operations.
const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Request is a single operation applied to two operands.
type Request struct {
	Operation Operation
	Num1      float64
	Num2      float64
}

// Perform applies op to a and b.
// Only division by zero is special-cased; overflow and infinities propagate.
func Perform(op Operation, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, ErrInvalidOperation
	}
}

// Perform applies the request's operation to its operands.
func (r Request) Perform() (float64, error) {
	return Perform(r.Operation, r.Num1, r.Num2)
}
