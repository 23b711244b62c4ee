package hostcall

import (
	"math"
	"strconv"

	"github.com/sirkon/linecov/internal/coverr"
)

// oneBasedArg переводит номер хоста, отсчитываемый с единицы, в индекс
// отсчитываемый с нуля.
func oneBasedArg(v Value, what string) (int, error) {
	n, err := integerArg(v, what)
	if err != nil {
		return 0, err
	}

	if n < 1 {
		return 0, coverr.NewInvalidInput(what, "must be positive, got "+strconv.Itoa(n))
	}

	return n - 1, nil
}

// integerArg скалярное целое из числового значения хоста.
func integerArg(v Value, what string) (int, error) {
	var f float64
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		if x > math.MaxInt || x < math.MinInt {
			return 0, coverr.NewInvalidInput(what, "value is out of range")
		}
		return int(x), nil
	case float64:
		f = x
	case float32:
		f = float64(x)
	case []float64:
		if len(x) != 1 {
			return 0, coverr.NewInvalidInput(what, "must be a scalar, got "+strconv.Itoa(len(x))+" elements")
		}
		f = x[0]
	default:
		return 0, coverr.NewInvalidInput(what, "must be a number")
	}

	switch {
	case math.IsNaN(f):
		return 0, coverr.NewInvalidInput(what, "value is NaN")
	case math.IsInf(f, 0) || f != math.Trunc(f):
		return 0, coverr.NewInvalidInput(what, "value is non-integer double")
	case f >= math.MaxInt || f < math.MinInt:
		return 0, coverr.NewInvalidInput(what, "value is out of range")
	}

	return int(f), nil
}
