package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shkola_backend/internals/features/grades/dto"
	"shkola_backend/internals/features/grades/model"
	studentModel "shkola_backend/internals/features/students/model"
	teacherModel "shkola_backend/internals/features/teachers/model"
	helper "shkola_backend/internals/helpers"
	"shkola_backend/internals/helpers/dbtime"
)

/* ================= Controller & Constructor ================= */

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

var validate = validator.New()

/* ================= Handlers ================= */

// POST /api/grades
func (ctl *GradeController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	date, err := dbtime.ParseDate(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректная дата")
	}

	if err := ctl.ensureStudentExists(req.StudentID); err != nil {
		return err
	}
	if err := ctl.ensureTeacherExists(req.TeacherID); err != nil {
		return err
	}

	m := req.ToModel(date)
	if err := ctl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось создать оценку")
	}

	if err := ctl.DB.Preload("Student").Preload("Teacher").First(m, m.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, dto.NewGradeResponse(m))
}

// GET /api/grades/:id
func (ctl *GradeController) FindOne(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var grade model.GradeModel
	if err := ctl.DB.Preload("Student").Preload("Teacher").
		First(&grade, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Оценка не найдена")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.NewGradeResponse(&grade))
}

// GET /api/grades — фильтры: student_id, teacher_id, start_date, end_date
func (ctl *GradeController) FindAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)

	tx := ctl.DB.Model(&model.GradeModel{})
	if studentID := c.QueryInt("student_id"); studentID > 0 {
		tx = tx.Where("student_id = ?", studentID)
	}
	if teacherID := c.QueryInt("teacher_id"); teacherID > 0 {
		tx = tx.Where("teacher_id = ?", teacherID)
	}
	if s := strings.TrimSpace(c.Query("start_date")); s != "" {
		from, err := dbtime.ParseDate(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Некорректная дата начала периода")
		}
		tx = tx.Where("date >= ?", from)
	}
	if s := strings.TrimSpace(c.Query("end_date")); s != "" {
		to, err := dbtime.ParseDate(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Некорректная дата конца периода")
		}
		tx = tx.Where("date <= ?", to)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось посчитать записи")
	}

	var rows []model.GradeModel
	if err := tx.Preload("Student").Preload("Teacher").
		Order("date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось получить список")
	}

	items := make([]*dto.GradeResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewGradeResponse(&rows[i]))
	}
	return helper.JsonList(c, items, total, p)
}

// PUT /api/grades/:id
func (ctl *GradeController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var grade model.GradeModel
	if err := ctl.DB.First(&grade, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Оценка не найдена")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.StudentID != nil {
		if err := ctl.ensureStudentExists(*req.StudentID); err != nil {
			return err
		}
	}
	if req.TeacherID != nil {
		if err := ctl.ensureTeacherExists(*req.TeacherID); err != nil {
			return err
		}
	}

	req.ApplyToModel(&grade)
	if req.Date != nil {
		date, err := dbtime.ParseDate(*req.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Некорректная дата")
		}
		grade.Date = date
	}

	if err := ctl.DB.Save(&grade).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось обновить данные")
	}

	if err := ctl.DB.Preload("Student").Preload("Teacher").
		First(&grade, grade.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.NewGradeResponse(&grade))
}

// DELETE /api/grades/:id
func (ctl *GradeController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var grade model.GradeModel
	if err := ctl.DB.First(&grade, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Оценка не найдена")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&grade).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось удалить запись")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Оценка успешно удалена")
}

/* ================= Internal checks ================= */

func (ctl *GradeController) ensureStudentExists(studentID uint) error {
	var cnt int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("id = ?", studentID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Студент не найден")
	}
	return nil
}

func (ctl *GradeController) ensureTeacherExists(teacherID uint) error {
	var cnt int64
	if err := ctl.DB.Model(&teacherModel.TeacherModel{}).
		Where("id = ?", teacherID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Учитель не найден")
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
