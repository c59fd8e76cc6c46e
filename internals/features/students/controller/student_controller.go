package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shkola_backend/internals/constants"
	classModel "shkola_backend/internals/features/classes/model"
	"shkola_backend/internals/features/students/dto"
	"shkola_backend/internals/features/students/model"
	helper "shkola_backend/internals/helpers"
	"shkola_backend/internals/helpers/dbtime"
	authmw "shkola_backend/internals/middlewares/auth"
)

/* ================= Controller & Constructor ================= */

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

/* ================= Handlers ================= */

// POST /api/students/registration
func (ctl *StudentController) Registration(c *fiber.Ctx) error {
	var req dto.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	birthDate, err := dbtime.ParseDate(req.BirthDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректная дата рождения")
	}

	if err := ctl.ensureClassExists(req.ClassID); err != nil {
		return err
	}

	var existing model.StudentModel
	err = ctl.DB.Where("email = ?", req.Email).Take(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Студент с таким email уже существует")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	hash, err := helper.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось захэшировать пароль")
	}

	m := req.ToModel(hash, birthDate)
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Студент с таким email уже существует")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось создать студента")
	}

	return helper.JsonCreated(c, dto.NewStudentResponse(m))
}

// POST /api/students/login
func (ctl *StudentController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var student model.StudentModel
	if err := ctl.DB.Where("email = ?", req.Email).Take(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Студент не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !helper.CheckPasswordHash(student.Password, req.Password) {
		return fiber.NewError(fiber.StatusBadRequest, "Неверный пароль")
	}

	token, err := helper.SignPrincipalToken(constants.ClaimStudentID, student.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось выпустить токен")
	}

	return helper.JsonOK(c, fiber.Map{
		"token":     token,
		"studentId": student.ID,
		"role":      constants.RoleStudent,
	})
}

// GET /api/students/auth
func (ctl *StudentController) Auth(c *fiber.Ctx) error {
	studentID, ok := authmw.StudentIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Не авторизован")
	}

	var student model.StudentModel
	if err := ctl.DB.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Студент не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, fiber.Map{"student": dto.NewStudentResponse(&student)})
}

// GET /api/students/:id
func (ctl *StudentController) FindOne(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var student model.StudentModel
	if err := ctl.DB.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Студент не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.NewStudentResponse(&student))
}

// GET /api/students — фильтры: search (фамилия/email), class_id
func (ctl *StudentController) FindAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)

	tx := ctl.DB.Model(&model.StudentModel{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if classID := c.QueryInt("class_id"); classID > 0 {
		tx = tx.Where("class_id = ?", classID)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось посчитать записи")
	}

	var rows []model.StudentModel
	if err := tx.Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось получить список")
	}

	items := make([]*dto.StudentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewStudentResponse(&rows[i]))
	}
	return helper.JsonList(c, items, total, p)
}

// PUT /api/students/:id — сам студент либо администратор
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	studentID, isStudent := authmw.StudentIDFromLocals(c)
	if !(isStudent && studentID == id) && !authmw.IsAdmin(c) {
		return fiber.NewError(fiber.StatusForbidden, "Нет прав для обновления этого профиля")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var student model.StudentModel
	if err := ctl.DB.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Студент не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		req.Email = &email
		var cnt int64
		if err := ctl.DB.Model(&model.StudentModel{}).
			Where("email = ? AND id <> ?", email, id).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Студент с таким email уже существует")
		}
	}

	if req.ClassID != nil {
		if err := ctl.ensureClassExists(*req.ClassID); err != nil {
			return err
		}
	}

	req.ApplyToModel(&student)
	if req.BirthDate != nil {
		birthDate, err := dbtime.ParseDate(*req.BirthDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Некорректная дата рождения")
		}
		student.BirthDate = birthDate
	}
	if req.Password != nil {
		hash, err := helper.HashPassword(*req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Не удалось захэшировать пароль")
		}
		student.Password = hash
	}

	if err := ctl.DB.Save(&student).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Студент с таким email уже существует")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось обновить данные")
	}

	return helper.JsonOK(c, dto.NewStudentResponse(&student))
}

// DELETE /api/students/:id — только сам студент
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	studentID, ok := authmw.StudentIDFromLocals(c)
	if !ok || studentID != id {
		return fiber.NewError(fiber.StatusForbidden, "Нет прав для удаления этого профиля")
	}

	var student model.StudentModel
	if err := ctl.DB.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Студент не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&student).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось удалить запись")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Студент успешно удалён")
}

func (ctl *StudentController) ensureClassExists(classID uint) error {
	var cnt int64
	if err := ctl.DB.Model(&classModel.ClassModel{}).
		Where("id = ?", classID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Класс не найден")
	}
	return nil
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Некорректный ID")
	}
	return uint(id), nil
}
