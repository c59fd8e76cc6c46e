package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"shkola_backend/internals/constants"
	"shkola_backend/internals/features/attendance/dto"
	"shkola_backend/internals/features/attendance/model"
	scheduleModel "shkola_backend/internals/features/schedules/model"
	studentModel "shkola_backend/internals/features/students/model"
	helper "shkola_backend/internals/helpers"
	"shkola_backend/internals/helpers/dbtime"
)

/* ================= Controller & Constructor ================= */

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

const (
	duplicateMarkMsg = "Запись посещаемости для данного студента, расписания и даты уже существует"
	badStatusMsg     = "Неверное значение статуса. Допустимые: present, absent, excused"
)

/* ================= Handlers ================= */

// POST /api/attendance
func (ctl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !constants.IsValidAttendanceStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, badStatusMsg)
	}

	date, err := dbtime.ParseDate(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректная дата")
	}

	if err := ctl.ensureStudentExists(req.StudentID); err != nil {
		return err
	}
	if err := ctl.ensureScheduleExists(req.ScheduleID); err != nil {
		return err
	}
	if err := ctl.ensureMarkFree(req.StudentID, req.ScheduleID, date, 0); err != nil {
		return err
	}

	m := req.ToModel(date)
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, duplicateMarkMsg)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось создать запись посещаемости")
	}

	if err := ctl.DB.Preload("Student").Preload("Schedule").First(m, m.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, dto.NewAttendanceResponse(m))
}

// GET /api/attendance/:id
func (ctl *AttendanceController) FindOne(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var mark model.AttendanceModel
	if err := ctl.DB.Preload("Student").Preload("Schedule").
		First(&mark, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Запись посещаемости не найдена")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.NewAttendanceResponse(&mark))
}

// GET /api/attendance — фильтры: student_id, schedule_id, status,
// start_date, end_date
func (ctl *AttendanceController) FindAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)

	tx := ctl.DB.Model(&model.AttendanceModel{})
	if studentID := c.QueryInt("student_id"); studentID > 0 {
		tx = tx.Where("student_id = ?", studentID)
	}
	if scheduleID := c.QueryInt("schedule_id"); scheduleID > 0 {
		tx = tx.Where("schedule_id = ?", scheduleID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !constants.IsValidAttendanceStatus(status) {
			return fiber.NewError(fiber.StatusBadRequest, badStatusMsg)
		}
		tx = tx.Where("status = ?", status)
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

	var rows []model.AttendanceModel
	if err := tx.Preload("Student").Preload("Schedule").
		Order("date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось получить список")
	}

	items := make([]*dto.AttendanceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewAttendanceResponse(&rows[i]))
	}
	return helper.JsonList(c, items, total, p)
}

// PUT /api/attendance/:id
func (ctl *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.Status != nil && !constants.IsValidAttendanceStatus(*req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, badStatusMsg)
	}

	var mark model.AttendanceModel
	if err := ctl.DB.First(&mark, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Запись посещаемости не найдена")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.StudentID != nil {
		if err := ctl.ensureStudentExists(*req.StudentID); err != nil {
			return err
		}
	}
	if req.ScheduleID != nil {
		if err := ctl.ensureScheduleExists(*req.ScheduleID); err != nil {
			return err
		}
	}

	req.ApplyToModel(&mark)
	if req.Date != nil {
		date, err := dbtime.ParseDate(*req.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Некорректная дата")
		}
		mark.Date = date
	}

	if err := ctl.ensureMarkFree(mark.StudentID, mark.ScheduleID, mark.Date, mark.ID); err != nil {
		return err
	}

	if err := ctl.DB.Save(&mark).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, duplicateMarkMsg)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось обновить данные")
	}

	if err := ctl.DB.Preload("Student").Preload("Schedule").
		First(&mark, mark.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.NewAttendanceResponse(&mark))
}

// DELETE /api/attendance/:id
func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var mark model.AttendanceModel
	if err := ctl.DB.First(&mark, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Запись посещаемости не найдена")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&mark).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось удалить запись")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Запись посещаемости успешно удалена")
}

/* ================= Internal checks ================= */

func (ctl *AttendanceController) ensureMarkFree(studentID, scheduleID uint, date datatypes.Date, excludeID uint) error {
	tx := ctl.DB.Model(&model.AttendanceModel{}).
		Where("student_id = ? AND schedule_id = ? AND date = ?", studentID, scheduleID, date)
	if excludeID > 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	var cnt int64
	if err := tx.Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusBadRequest, duplicateMarkMsg)
	}
	return nil
}

func (ctl *AttendanceController) ensureStudentExists(studentID uint) error {
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

func (ctl *AttendanceController) ensureScheduleExists(scheduleID uint) error {
	var cnt int64
	if err := ctl.DB.Model(&scheduleModel.ScheduleModel{}).
		Where("id = ?", scheduleID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Расписание не найдено")
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
