// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"shkola_backend/internals/constants"
	helper "shkola_backend/internals/helpers"
)

// Locals-ключи, которые заполняет middleware
const (
	LocalsRole      = "role"
	LocalsAdminID   = "admin_id"
	LocalsTeacherID = "teacher_id"
	LocalsStudentID = "student_id"
)

// AuthMiddleware: bearer-токен → проверка подписи и exp → ровно один
// identity-claim в Locals. Любой сбой — 401.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetBearerToken(c)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Не авторизован")
		}

		claims, err := helper.ParseToken(raw)
		if err != nil {
			// подпись, exp и формат проверены парсером
			return fiber.NewError(fiber.StatusUnauthorized, "Не авторизован")
		}

		switch {
		case hasClaim(claims, constants.ClaimAdminID):
			id, _ := helper.ClaimUint(claims, constants.ClaimAdminID)
			c.Locals(LocalsRole, constants.RoleAdmin)
			c.Locals(LocalsAdminID, id)
		case hasClaim(claims, constants.ClaimTeacherID):
			id, _ := helper.ClaimUint(claims, constants.ClaimTeacherID)
			c.Locals(LocalsRole, constants.RoleTeacher)
			c.Locals(LocalsTeacherID, id)
		case hasClaim(claims, constants.ClaimStudentID):
			id, _ := helper.ClaimUint(claims, constants.ClaimStudentID)
			c.Locals(LocalsRole, constants.RoleStudent)
			c.Locals(LocalsStudentID, id)
		default:
			return fiber.NewError(fiber.StatusUnauthorized, "Не авторизован")
		}

		return c.Next()
	}
}

func hasClaim(claims map[string]interface{}, key string) bool {
	_, ok := claims[key]
	return ok
}
