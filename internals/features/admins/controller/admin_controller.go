package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shkola_backend/internals/constants"
	"shkola_backend/internals/features/admins/dto"
	"shkola_backend/internals/features/admins/model"
	helper "shkola_backend/internals/helpers"
	authmw "shkola_backend/internals/middlewares/auth"
)

/* ================= Controller & Constructor ================= */

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

var validate = validator.New()

/* ================= Handlers ================= */

// POST /api/admins/registration
func (ctl *AdminController) Registration(c *fiber.Ctx) error {
	var req dto.RegisterAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var existing model.AdminModel
	err := ctl.DB.Where("email = ?", req.Email).Take(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Администратор с таким email уже существует")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	hash, err := helper.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось захэшировать пароль")
	}

	m := req.ToModel(hash)
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Администратор с таким email уже существует")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось создать администратора")
	}

	return helper.JsonCreated(c, dto.NewAdminResponse(m))
}

// POST /api/admins/login
func (ctl *AdminController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var admin model.AdminModel
	if err := ctl.DB.Where("email = ?", req.Email).Take(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Администратор не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !helper.CheckPasswordHash(admin.Password, req.Password) {
		return fiber.NewError(fiber.StatusBadRequest, "Неверный пароль")
	}

	token, err := helper.SignPrincipalToken(constants.ClaimAdminID, admin.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось выпустить токен")
	}

	return helper.JsonOK(c, fiber.Map{
		"token":   token,
		"adminId": admin.ID,
		"role":    constants.RoleAdmin,
	})
}

// GET /api/admins/auth — данные текущего администратора по токену
func (ctl *AdminController) Auth(c *fiber.Ctx) error {
	adminID, ok := authmw.AdminIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Не авторизован")
	}

	var admin model.AdminModel
	if err := ctl.DB.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Администратор не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, fiber.Map{"admin": dto.NewAdminResponse(&admin)})
}

// GET /api/admins/:id
func (ctl *AdminController) FindOne(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var admin model.AdminModel
	if err := ctl.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Администратор не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.NewAdminResponse(&admin))
}

// GET /api/admins
func (ctl *AdminController) FindAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)

	tx := ctl.DB.Model(&model.AdminModel{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось посчитать записи")
	}

	var rows []model.AdminModel
	if err := tx.Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось получить список")
	}

	items := make([]*dto.AdminResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewAdminResponse(&rows[i]))
	}
	return helper.JsonList(c, items, total, p)
}

// PUT /api/admins/:id — профиль может менять только сам администратор
func (ctl *AdminController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	adminID, ok := authmw.AdminIDFromLocals(c)
	if !ok || adminID != id {
		return fiber.NewError(fiber.StatusForbidden, "Нет прав для обновления этого профиля")
	}

	var req dto.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var admin model.AdminModel
	if err := ctl.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Администратор не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// email уникален, текущая запись исключается
	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		req.Email = &email
		var cnt int64
		if err := ctl.DB.Model(&model.AdminModel{}).
			Where("email = ? AND id <> ?", email, id).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Администратор с таким email уже существует")
		}
	}

	req.ApplyToModel(&admin)
	if req.Password != nil {
		hash, err := helper.HashPassword(*req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Не удалось захэшировать пароль")
		}
		admin.Password = hash
	}

	if err := ctl.DB.Save(&admin).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Администратор с таким email уже существует")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось обновить данные")
	}

	return helper.JsonOK(c, dto.NewAdminResponse(&admin))
}

// DELETE /api/admins/:id — удалить свой профиль может только сам администратор
func (ctl *AdminController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	adminID, ok := authmw.AdminIDFromLocals(c)
	if !ok || adminID != id {
		return fiber.NewError(fiber.StatusForbidden, "Нет прав для удаления этого профиля")
	}

	var admin model.AdminModel
	if err := ctl.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Администратор не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&admin).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось удалить запись")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Администратор успешно удалён")
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Некорректный ID")
	}
	return uint(id), nil
}
