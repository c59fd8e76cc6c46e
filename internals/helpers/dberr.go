package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsUniqueViolation распознаёт нарушение уникального индекса.
// Предварительная проверка в контроллере закрывает типовой случай,
// а уникальный индекс в БД — гонку двух конкурентных запросов;
// обе ветки должны давать один и тот же 400-ответ.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") ||
		strings.Contains(low, "unique constraint")
}
