package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shkola_backend/internals/constants"
	"shkola_backend/internals/features/teachers/dto"
	"shkola_backend/internals/features/teachers/model"
	helper "shkola_backend/internals/helpers"
	authmw "shkola_backend/internals/middlewares/auth"
)

/* ================= Controller & Constructor ================= */

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

var validate = validator.New()

/* ================= Handlers ================= */

// POST /api/teachers/registration
func (ctl *TeacherController) Registration(c *fiber.Ctx) error {
	var req dto.RegisterTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var existing model.TeacherModel
	err := ctl.DB.Where("email = ?", req.Email).Take(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Учитель с таким email уже существует")
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
			return fiber.NewError(fiber.StatusBadRequest, "Учитель с таким email уже существует")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось создать учителя")
	}

	return helper.JsonCreated(c, dto.NewTeacherResponse(m))
}

// POST /api/teachers/login
func (ctl *TeacherController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var teacher model.TeacherModel
	if err := ctl.DB.Where("email = ?", req.Email).Take(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Учитель не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !helper.CheckPasswordHash(teacher.Password, req.Password) {
		return fiber.NewError(fiber.StatusBadRequest, "Неверный пароль")
	}

	token, err := helper.SignPrincipalToken(constants.ClaimTeacherID, teacher.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось выпустить токен")
	}

	return helper.JsonOK(c, fiber.Map{
		"token":     token,
		"teacherId": teacher.ID,
		"role":      constants.RoleTeacher,
	})
}

// GET /api/teachers/auth
func (ctl *TeacherController) Auth(c *fiber.Ctx) error {
	teacherID, ok := authmw.TeacherIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Не авторизован")
	}

	var teacher model.TeacherModel
	if err := ctl.DB.First(&teacher, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Учитель не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, fiber.Map{"teacher": dto.NewTeacherResponse(&teacher)})
}

// GET /api/teachers/:id
func (ctl *TeacherController) FindOne(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var teacher model.TeacherModel
	if err := ctl.DB.First(&teacher, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Учитель не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.NewTeacherResponse(&teacher))
}

// GET /api/teachers — фильтры: search (фамилия/email), subject
func (ctl *TeacherController) FindAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)

	tx := ctl.DB.Model(&model.TeacherModel{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if subject := strings.TrimSpace(c.Query("subject")); subject != "" {
		tx = tx.Where("subject = ?", subject)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось посчитать записи")
	}

	var rows []model.TeacherModel
	if err := tx.Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось получить список")
	}

	items := make([]*dto.TeacherResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewTeacherResponse(&rows[i]))
	}
	return helper.JsonList(c, items, total, p)
}

// PUT /api/teachers/:id — сам учитель либо администратор
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	teacherID, isTeacher := authmw.TeacherIDFromLocals(c)
	if !(isTeacher && teacherID == id) && !authmw.IsAdmin(c) {
		return fiber.NewError(fiber.StatusForbidden, "Нет прав для обновления этого профиля")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var teacher model.TeacherModel
	if err := ctl.DB.First(&teacher, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Учитель не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		req.Email = &email
		var cnt int64
		if err := ctl.DB.Model(&model.TeacherModel{}).
			Where("email = ? AND id <> ?", email, id).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Учитель с таким email уже существует")
		}
	}

	req.ApplyToModel(&teacher)
	if req.Password != nil {
		hash, err := helper.HashPassword(*req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Не удалось захэшировать пароль")
		}
		teacher.Password = hash
	}

	if err := ctl.DB.Save(&teacher).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Учитель с таким email уже существует")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось обновить данные")
	}

	return helper.JsonOK(c, dto.NewTeacherResponse(&teacher))
}

// DELETE /api/teachers/:id — только сам учитель
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	teacherID, ok := authmw.TeacherIDFromLocals(c)
	if !ok || teacherID != id {
		return fiber.NewError(fiber.StatusForbidden, "Нет прав для удаления этого профиля")
	}

	var teacher model.TeacherModel
	if err := ctl.DB.First(&teacher, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Учитель не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&teacher).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось удалить запись")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Учитель успешно удалён")
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Некорректный ID")
	}
	return uint(id), nil
}
