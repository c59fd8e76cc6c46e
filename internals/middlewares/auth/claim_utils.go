package auth

import "github.com/gofiber/fiber/v2"

func localUint(c *fiber.Ctx, key string) (uint, bool) {
	v, ok := c.Locals(key).(uint)
	return v, ok
}

// AdminIDFromLocals — id администратора, если запрос сделан админом.
func AdminIDFromLocals(c *fiber.Ctx) (uint, bool) {
	return localUint(c, LocalsAdminID)
}

func TeacherIDFromLocals(c *fiber.Ctx) (uint, bool) {
	return localUint(c, LocalsTeacherID)
}

func StudentIDFromLocals(c *fiber.Ctx) (uint, bool) {
	return localUint(c, LocalsStudentID)
}

// IsAdmin — запрос аутентифицирован админским токеном.
func IsAdmin(c *fiber.Ctx) bool {
	_, ok := AdminIDFromLocals(c)
	return ok
}
