package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shkola_backend/internals/constants"
	adminModel "shkola_backend/internals/features/admins/model"
	"shkola_backend/internals/features/events/dto"
	"shkola_backend/internals/features/events/model"
	studentModel "shkola_backend/internals/features/students/model"
	teacherModel "shkola_backend/internals/features/teachers/model"
	helper "shkola_backend/internals/helpers"
	"shkola_backend/internals/helpers/dbtime"
)

/* ================= Controller & Constructor ================= */

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

var validate = validator.New()

/* ================= Handlers ================= */

// POST /api/events
func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	eventDate, err := dbtime.ParseDateTime(req.EventDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректная дата события")
	}

	if err := ctl.ensureOrganizerExists(req.Organizer()); err != nil {
		return err
	}

	students, err := ctl.loadStudents(req.StudentIDs)
	if err != nil {
		return err
	}
	teachers, err := ctl.loadTeachers(req.TeacherIDs)
	if err != nil {
		return err
	}

	m := req.ToModel(eventDate)
	m.Students = students
	m.Teachers = teachers
	if err := ctl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось создать событие")
	}

	if err := ctl.DB.Preload("Students").Preload("Teachers").First(m, m.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, dto.NewEventResponse(m))
}

// GET /api/events/:id — публичный
func (ctl *EventController) FindOne(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var event model.EventModel
	if err := ctl.DB.Preload("Students").Preload("Teachers").
		First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Событие не найдено")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.NewEventResponse(&event))
}

// GET /api/events — публичный; фильтры: organizer_id, organizer_type,
// start_date, end_date, title (подстрока)
func (ctl *EventController) FindAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)

	tx := ctl.DB.Model(&model.EventModel{})
	if organizerID := c.QueryInt("organizer_id"); organizerID > 0 {
		tx = tx.Where("organizer_id = ?", organizerID)
	}
	if ot := strings.TrimSpace(c.Query("organizer_type")); ot != "" {
		if !constants.IsValidOrganizerType(ot) {
			return fiber.NewError(fiber.StatusBadRequest, "Неверный тип организатора. Допустимые: admin, teacher")
		}
		tx = tx.Where("organizer_type = ?", ot)
	}
	if s := strings.TrimSpace(c.Query("start_date")); s != "" {
		from, err := dbtime.ParseDateTime(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Некорректная дата начала периода")
		}
		tx = tx.Where("event_date >= ?", from)
	}
	if s := strings.TrimSpace(c.Query("end_date")); s != "" {
		to, err := dbtime.ParseDateTime(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Некорректная дата конца периода")
		}
		tx = tx.Where("event_date <= ?", to)
	}
	if title := strings.TrimSpace(c.Query("title")); title != "" {
		tx = tx.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(title)+"%")
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось посчитать записи")
	}

	var rows []model.EventModel
	if err := tx.Preload("Students").Preload("Teachers").
		Order("event_date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось получить список")
	}

	items := make([]*dto.EventResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewEventResponse(&rows[i]))
	}
	return helper.JsonList(c, items, total, p)
}

// PUT /api/events/:id
func (ctl *EventController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Некорректное тело запроса")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var event model.EventModel
	if err := ctl.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Событие не найдено")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// организатор меняется только целиком: id вместе с типом
	if req.OrganizerID != nil || req.OrganizerType != nil {
		organizer := event.Organizer()
		if req.OrganizerID != nil {
			organizer.ID = *req.OrganizerID
		}
		if req.OrganizerType != nil {
			organizer.Type = *req.OrganizerType
		}
		if err := ctl.ensureOrganizerExists(organizer); err != nil {
			return err
		}
		event.SetOrganizer(organizer)
	}

	req.ApplyToModel(&event)
	if req.EventDate != nil {
		eventDate, err := dbtime.ParseDateTime(*req.EventDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Некорректная дата события")
		}
		event.EventDate = eventDate
	}

	if err := ctl.DB.Save(&event).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось обновить данные")
	}

	if req.StudentIDs != nil {
		students, err := ctl.loadStudents(req.StudentIDs)
		if err != nil {
			return err
		}
		if err := ctl.DB.Model(&event).Association("Students").Replace(students); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Не удалось обновить участников")
		}
	}
	if req.TeacherIDs != nil {
		teachers, err := ctl.loadTeachers(req.TeacherIDs)
		if err != nil {
			return err
		}
		if err := ctl.DB.Model(&event).Association("Teachers").Replace(teachers); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Не удалось обновить участников")
		}
	}

	if err := ctl.DB.Preload("Students").Preload("Teachers").
		First(&event, event.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.NewEventResponse(&event))
}

// DELETE /api/events/:id
func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var event model.EventModel
	if err := ctl.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Событие не найдено")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Select("Students", "Teachers").Delete(&event).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Не удалось удалить запись")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Событие успешно удалено")
}

/* ================= Internal checks ================= */

func (ctl *EventController) ensureOrganizerExists(o model.Organizer) error {
	if !o.IsValid() {
		return fiber.NewError(fiber.StatusBadRequest, "Неверный тип организатора. Допустимые: admin, teacher")
	}

	var cnt int64
	switch o.Type {
	case constants.OrganizerAdmin:
		if err := ctl.DB.Model(&adminModel.AdminModel{}).
			Where("id = ?", o.ID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Администратор-организатор не найден")
		}
	case constants.OrganizerTeacher:
		if err := ctl.DB.Model(&teacherModel.TeacherModel{}).
			Where("id = ?", o.ID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Учитель-организатор не найден")
		}
	}
	return nil
}

func (ctl *EventController) loadStudents(ids []uint) ([]studentModel.StudentModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []studentModel.StudentModel
	if err := ctl.DB.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(rows) != len(ids) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Студент не найден")
	}
	return rows, nil
}

func (ctl *EventController) loadTeachers(ids []uint) ([]teacherModel.TeacherModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []teacherModel.TeacherModel
	if err := ctl.DB.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(rows) != len(ids) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Учитель не найден")
	}
	return rows, nil
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Некорректный ID")
	}
	return uint(id), nil
}
