package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shkola_backend/internals/features/classes/dto"
	"shkola_backend/internals/features/classes/model"
	studentModel "shkola_backend/internals/features/students/model"
	teacherModel "shkola_backend/internals/features/teachers/model"
	helper "shkola_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

/* ================= Handlers ================= */

// POST /api/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.ensureTeacherExists(req.ClassTeacherID); err != nil {
		return err
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось создать класс")
	}

	if err := ctl.DB.Preload("ClassTeacher").First(m, m.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, dto.NewClassResponse(m))
}

// GET /api/classes/:id
func (ctl *ClassController) FindOne(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var class model.ClassModel
	if err := ctl.DB.Preload("ClassTeacher").Preload("Students").
		First(&class, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Класс не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.NewClassResponse(&class))
}

// GET /api/classes — фильтры: academic_year, name (подстрока)
func (ctl *ClassController) FindAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)

	tx := ctl.DB.Model(&model.ClassModel{})
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		tx = tx.Where("academic_year = ?", year)
	}
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось посчитать записи")
	}

	var rows []model.ClassModel
	if err := tx.Preload("ClassTeacher").Preload("Students").
		Order("name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось получить список")
	}

	items := make([]*dto.ClassResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewClassResponse(&rows[i]))
	}
	return helper.JsonList(c, items, total, p)
}

// PUT /api/classes/:id
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var class model.ClassModel
	if err := ctl.DB.First(&class, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Класс не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.ClassTeacherID != nil {
		if err := ctl.ensureTeacherExists(*req.ClassTeacherID); err != nil {
			return err
		}
	}

	req.ApplyToModel(&class)
	if err := ctl.DB.Save(&class).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось обновить данные")
	}

	if err := ctl.DB.Preload("ClassTeacher").Preload("Students").
		First(&class, class.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.NewClassResponse(&class))
}

// DELETE /api/classes/:id — запрещено, пока в классе есть студенты
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var class model.ClassModel
	if err := ctl.DB.First(&class, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Класс не найден")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var students int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("class_id = ?", id).
		Count(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if students > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Невозможно удалить класс, к которому привязаны студенты")
	}

	if err := ctl.DB.Delete(&class).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось удалить запись")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Класс успешно удалён")
}

func (ctl *ClassController) ensureTeacherExists(teacherID uint) error {
	var cnt int64
	if err := ctl.DB.Model(&teacherModel.TeacherModel{}).
		Where("id = ?", teacherID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Учитель-классный руководитель не найден")
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
