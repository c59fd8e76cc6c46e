package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shkola_backend/internals/constants"
	classModel "shkola_backend/internals/features/classes/model"
	scheduleModel "shkola_backend/internals/features/schedules/model"
	teacherModel "shkola_backend/internals/features/teachers/model"
	helper "shkola_backend/internals/helpers"
	"shkola_backend/internals/testutil"
)

type fixtures struct {
	teacher *teacherModel.TeacherModel
	class   *classModel.ClassModel
	token   string
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	teacher := &teacherModel.TeacherModel{
		FirstName: "Сергей",
		LastName:  "Васильев",
		Email:     "vasiliev@shkola.ru",
		Password:  "x",
		Subject:   "Физика",
	}
	require.NoError(t, db.Create(teacher).Error)

	class := &classModel.ClassModel{
		Name:           "7В",
		ClassTeacherID: teacher.ID,
		AcademicYear:   "2025/2026",
	}
	require.NoError(t, db.Create(class).Error)

	token, err := helper.SignPrincipalToken(constants.ClaimAdminID, 1)
	require.NoError(t, err)

	return fixtures{teacher: teacher, class: class, token: token}
}

func scheduleBody(f fixtures, day, lesson int) map[string]any {
	return map[string]any{
		"class_id":      f.class.ID,
		"teacher_id":    f.teacher.ID,
		"day_of_week":   day,
		"lesson_number": lesson,
		"classroom":     "каб. 204",
	}
}

func TestScheduleCreateAndInclude(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	f := seedFixtures(t, db)

	resp := testutil.Request(t, app, http.MethodPost, "/api/schedules", f.token, scheduleBody(f, 1, 2))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID      uint `json:"id"`
		Class   *struct {
			Name string `json:"name"`
		} `json:"class"`
		Teacher *struct {
			Subject string `json:"subject"`
		} `json:"teacher"`
	}
	testutil.Decode(t, resp, &created)
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.Class)
	assert.Equal(t, "7В", created.Class.Name)
	require.NotNil(t, created.Teacher)
	assert.Equal(t, "Физика", created.Teacher.Subject)
}

func TestScheduleSlotConflict(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	f := seedFixtures(t, db)

	first := testutil.Request(t, app, http.MethodPost, "/api/schedules", f.token, scheduleBody(f, 2, 3))
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := testutil.Request(t, app, http.MethodPost, "/api/schedules", f.token, scheduleBody(f, 2, 3))
	require.Equal(t, http.StatusBadRequest, second.StatusCode)
	assert.Equal(t, "Расписание для этого класса в указанное время уже существует", testutil.Message(t, second))

	// другой урок в тот же день — свободно
	third := testutil.Request(t, app, http.MethodPost, "/api/schedules", f.token, scheduleBody(f, 2, 4))
	require.Equal(t, http.StatusCreated, third.StatusCode)
}

func TestScheduleUpdateIntoTakenSlot(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	f := seedFixtures(t, db)

	taken := &scheduleModel.ScheduleModel{
		ClassID: f.class.ID, TeacherID: f.teacher.ID,
		DayOfWeek: 1, LessonNumber: 1, Classroom: "каб. 101",
	}
	require.NoError(t, db.Create(taken).Error)

	movable := &scheduleModel.ScheduleModel{
		ClassID: f.class.ID, TeacherID: f.teacher.ID,
		DayOfWeek: 1, LessonNumber: 2, Classroom: "каб. 102",
	}
	require.NoError(t, db.Create(movable).Error)

	path := fmt.Sprintf("/api/schedules/%d", movable.ID)
	resp := testutil.Request(t, app, http.MethodPut, path, f.token, map[string]any{"lesson_number": 1})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// обновление без смены слота проходит
	resp = testutil.Request(t, app, http.MethodPut, path, f.token, map[string]any{"classroom": "каб. 105"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestScheduleReferenceChecks(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	f := seedFixtures(t, db)

	body := scheduleBody(f, 3, 1)
	body["class_id"] = 999
	resp := testutil.Request(t, app, http.MethodPost, "/api/schedules", f.token, body)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Класс не найден", testutil.Message(t, resp))

	body = scheduleBody(f, 3, 1)
	body["teacher_id"] = 999
	resp = testutil.Request(t, app, http.MethodPost, "/api/schedules", f.token, body)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Учитель не найден", testutil.Message(t, resp))
}

func TestScheduleListOrderAndFilter(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	f := seedFixtures(t, db)

	rows := []scheduleModel.ScheduleModel{
		{ClassID: f.class.ID, TeacherID: f.teacher.ID, DayOfWeek: 3, LessonNumber: 2, Classroom: "а"},
		{ClassID: f.class.ID, TeacherID: f.teacher.ID, DayOfWeek: 1, LessonNumber: 5, Classroom: "б"},
		{ClassID: f.class.ID, TeacherID: f.teacher.ID, DayOfWeek: 1, LessonNumber: 2, Classroom: "в"},
	}
	require.NoError(t, db.Create(&rows).Error)

	var out struct {
		Data []struct {
			DayOfWeek    int `json:"day_of_week"`
			LessonNumber int `json:"lesson_number"`
		} `json:"data"`
		Total int64 `json:"total"`
	}

	resp := testutil.Request(t, app, http.MethodGet, "/api/schedules", f.token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.Decode(t, resp, &out)

	require.Len(t, out.Data, 3)
	assert.Equal(t, 1, out.Data[0].DayOfWeek)
	assert.Equal(t, 2, out.Data[0].LessonNumber)
	assert.Equal(t, 1, out.Data[1].DayOfWeek)
	assert.Equal(t, 5, out.Data[1].LessonNumber)
	assert.Equal(t, 3, out.Data[2].DayOfWeek)

	resp = testutil.Request(t, app, http.MethodGet, "/api/schedules?day_of_week=3", f.token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.Decode(t, resp, &out)
	assert.EqualValues(t, 1, out.Total)
}
