package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "shkola_backend/internals/features/classes/model"
	"shkola_backend/internals/features/schedules/dto"
	"shkola_backend/internals/features/schedules/model"
	teacherModel "shkola_backend/internals/features/teachers/model"
	helper "shkola_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

var validate = validator.New()

const slotTakenMsg = "Расписание для этого класса в указанное время уже существует"

/* ================= Handlers ================= */

// POST /api/schedules
func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.ensureClassExists(req.ClassID); err != nil {
		return err
	}
	if err := ctl.ensureTeacherExists(req.TeacherID); err != nil {
		return err
	}
	if err := ctl.ensureSlotFree(req.ClassID, req.DayOfWeek, req.LessonNumber, 0); err != nil {
		return err
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, slotTakenMsg)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось создать расписание")
	}

	if err := ctl.DB.Preload("Class").Preload("Teacher").First(m, m.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, dto.NewScheduleResponse(m))
}

// GET /api/schedules/:id
func (ctl *ScheduleController) FindOne(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var schedule model.ScheduleModel
	if err := ctl.DB.Preload("Class").Preload("Teacher").
		First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Расписание не найдено")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.NewScheduleResponse(&schedule))
}

// GET /api/schedules — фильтры: class_id, teacher_id, day_of_week
func (ctl *ScheduleController) FindAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)

	tx := ctl.DB.Model(&model.ScheduleModel{})
	if classID := c.QueryInt("class_id"); classID > 0 {
		tx = tx.Where("class_id = ?", classID)
	}
	if teacherID := c.QueryInt("teacher_id"); teacherID > 0 {
		tx = tx.Where("teacher_id = ?", teacherID)
	}
	if day := c.QueryInt("day_of_week"); day > 0 {
		tx = tx.Where("day_of_week = ?", day)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось посчитать записи")
	}

	var rows []model.ScheduleModel
	if err := tx.Preload("Class").Preload("Teacher").
		Order("day_of_week ASC, lesson_number ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось получить список")
	}

	items := make([]*dto.ScheduleResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewScheduleResponse(&rows[i]))
	}
	return helper.JsonList(c, items, total, p)
}

// PUT /api/schedules/:id
func (ctl *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var schedule model.ScheduleModel
	if err := ctl.DB.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Расписание не найдено")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.ClassID != nil {
		if err := ctl.ensureClassExists(*req.ClassID); err != nil {
			return err
		}
	}
	if req.TeacherID != nil {
		if err := ctl.ensureTeacherExists(*req.TeacherID); err != nil {
			return err
		}
	}

	req.ApplyToModel(&schedule)
	if err := ctl.ensureSlotFree(schedule.ClassID, schedule.DayOfWeek, schedule.LessonNumber, schedule.ID); err != nil {
		return err
	}

	if err := ctl.DB.Save(&schedule).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, slotTakenMsg)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось обновить данные")
	}

	if err := ctl.DB.Preload("Class").Preload("Teacher").
		First(&schedule, schedule.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.NewScheduleResponse(&schedule))
}

// DELETE /api/schedules/:id
func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var schedule model.ScheduleModel
	if err := ctl.DB.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Расписание не найдено")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&schedule).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось удалить запись")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Расписание успешно удалено")
}

/* ================= Internal checks ================= */

func (ctl *ScheduleController) ensureSlotFree(classID uint, day, lesson int, excludeID uint) error {
	tx := ctl.DB.Model(&model.ScheduleModel{}).
		Where("class_id = ? AND day_of_week = ? AND lesson_number = ?", classID, day, lesson)
	if excludeID > 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	var cnt int64
	if err := tx.Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusBadRequest, slotTakenMsg)
	}
	return nil
}

func (ctl *ScheduleController) ensureClassExists(classID uint) error {
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

func (ctl *ScheduleController) ensureTeacherExists(teacherID uint) error {
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
