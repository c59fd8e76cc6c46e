package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Стандартные формы ответа
   ошибки: {message}, списки: {data,total,page,totalPages}
=================================*/

// JsonError: единая форма ошибки {message}
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = "Внутренняя ошибка сервера"
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// JsonMessage: подтверждение без данных (например после удаления)
func JsonMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// JsonOK: одиночная сущность (raw row / DTO)
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated: ответ на успешный create
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonList: постраничный список в общем конверте
func JsonList(c *fiber.Ctx, data any, total int64, p Paging) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":       data,
		"total":      total,
		"page":       p.Page,
		"totalPages": TotalPages(total, p.Limit),
	})
}
