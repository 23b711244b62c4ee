package linestore

import (
	"math"
	"strconv"

	"github.com/sirkon/linecov/internal/coverr"
)

// grownCapacity вычисляет ёмкость массива необходимую для адресации
// элемента с данным индексом: max(capacity, 2*index+1). Ёмкость
// ограничивается limit, превышение ограничения или переполнение
// приводят к ошибке AllocationFailure.
func grownCapacity(capacity, index, limit int) (int, error) {
	if index > (math.MaxInt-1)/2 {
		return 0, coverr.NewAllocationFailure("requested index is too large", strconv.Itoa(index))
	}

	res := max(capacity, 2*index+1)
	if limit > 0 && res > limit {
		return 0, coverr.NewAllocationFailure(
			"capacity limit exceeded",
			strconv.Itoa(res)+" slots requested with limit of "+strconv.Itoa(limit),
		)
	}

	return res, nil
}
