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
	studentModel "shkola_backend/internals/features/students/model"
	teacherModel "shkola_backend/internals/features/teachers/model"
	helper "shkola_backend/internals/helpers"
	"shkola_backend/internals/helpers/dbtime"
	"shkola_backend/internals/testutil"
)

type fixtures struct {
	student  *studentModel.StudentModel
	schedule *scheduleModel.ScheduleModel
	token    string
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	teacher := &teacherModel.TeacherModel{
		FirstName: "Анна", LastName: "Морозова",
		Email: "morozova@shkola.ru", Password: "x", Subject: "Химия",
	}
	require.NoError(t, db.Create(teacher).Error)

	class := &classModel.ClassModel{Name: "8Г", ClassTeacherID: teacher.ID, AcademicYear: "2025/2026"}
	require.NoError(t, db.Create(class).Error)

	birth, err := dbtime.ParseDate("2011-03-15")
	require.NoError(t, err)
	student := &studentModel.StudentModel{
		FirstName: "Павел", LastName: "Волков",
		Email: "volkov@shkola.ru", Password: "x",
		BirthDate: birth, ClassID: class.ID,
	}
	require.NoError(t, db.Create(student).Error)

	schedule := &scheduleModel.ScheduleModel{
		ClassID: class.ID, TeacherID: teacher.ID,
		DayOfWeek: 2, LessonNumber: 4, Classroom: "каб. 310",
	}
	require.NoError(t, db.Create(schedule).Error)

	token, err := helper.SignPrincipalToken(constants.ClaimTeacherID, teacher.ID)
	require.NoError(t, err)

	return fixtures{student: student, schedule: schedule, token: token}
}

func markBody(f fixtures, date, status string) map[string]any {
	return map[string]any{
		"student_id":  f.student.ID,
		"schedule_id": f.schedule.ID,
		"date":        date,
		"status":      status,
	}
}

func TestAttendanceCreateAndDedup(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	f := seedFixtures(t, db)

	resp := testutil.Request(t, app, http.MethodPost, "/api/attendance", f.token,
		markBody(f, "2026-02-10", constants.AttendancePresent))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID      uint   `json:"id"`
		Date    string `json:"date"`
		Status  string `json:"status"`
		Student *struct {
			LastName string `json:"last_name"`
		} `json:"student"`
	}
	testutil.Decode(t, resp, &created)
	assert.Equal(t, "2026-02-10", created.Date)
	assert.Equal(t, constants.AttendancePresent, created.Status)
	require.NotNil(t, created.Student)
	assert.Equal(t, "Волков", created.Student.LastName)

	// тот же студент, то же расписание, та же дата
	dup := testutil.Request(t, app, http.MethodPost, "/api/attendance", f.token,
		markBody(f, "2026-02-10", constants.AttendanceAbsent))
	require.Equal(t, http.StatusBadRequest, dup.StatusCode)
	assert.Equal(t, "Запись посещаемости для данного студента, расписания и даты уже существует",
		testutil.Message(t, dup))

	// другая дата — допустимо
	next := testutil.Request(t, app, http.MethodPost, "/api/attendance", f.token,
		markBody(f, "2026-02-11", constants.AttendanceAbsent))
	require.Equal(t, http.StatusCreated, next.StatusCode)
}

func TestAttendanceInvalidStatus(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	f := seedFixtures(t, db)

	resp := testutil.Request(t, app, http.MethodPost, "/api/attendance", f.token,
		markBody(f, "2026-02-10", "late"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Неверное значение статуса. Допустимые: present, absent, excused",
		testutil.Message(t, resp))
}

func TestAttendanceUpdateStatus(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	f := seedFixtures(t, db)

	created := testutil.Request(t, app, http.MethodPost, "/api/attendance", f.token,
		markBody(f, "2026-02-12", constants.AttendanceAbsent))
	require.Equal(t, http.StatusCreated, created.StatusCode)

	var mark struct {
		ID uint `json:"id"`
	}
	testutil.Decode(t, created, &mark)

	path := fmt.Sprintf("/api/attendance/%d", mark.ID)
	remarks := "справка от врача"
	resp := testutil.Request(t, app, http.MethodPut, path, f.token,
		map[string]any{"status": constants.AttendanceExcused, "remarks": remarks})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Status  string  `json:"status"`
		Remarks *string `json:"remarks"`
	}
	testutil.Decode(t, resp, &updated)
	assert.Equal(t, constants.AttendanceExcused, updated.Status)
	require.NotNil(t, updated.Remarks)
	assert.Equal(t, remarks, *updated.Remarks)
}

func TestAttendanceListFilters(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	f := seedFixtures(t, db)

	for i, status := range []string{constants.AttendancePresent, constants.AttendanceAbsent, constants.AttendancePresent} {
		resp := testutil.Request(t, app, http.MethodPost, "/api/attendance", f.token,
			markBody(f, fmt.Sprintf("2026-03-%02d", i+1), status))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var out struct {
		Data []struct {
			Date string `json:"date"`
		} `json:"data"`
		Total int64 `json:"total"`
	}

	resp := testutil.Request(t, app, http.MethodGet, "/api/attendance?status=present", f.token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.Decode(t, resp, &out)
	assert.EqualValues(t, 2, out.Total)

	// свежие даты первыми
	resp = testutil.Request(t, app, http.MethodGet, "/api/attendance", f.token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.Decode(t, resp, &out)
	require.Len(t, out.Data, 3)
	assert.Equal(t, "2026-03-03", out.Data[0].Date)

	resp = testutil.Request(t, app, http.MethodGet,
		"/api/attendance?start_date=2026-03-02&end_date=2026-03-02", f.token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.Decode(t, resp, &out)
	assert.EqualValues(t, 1, out.Total)
}

func TestAttendanceReferenceChecks(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	f := seedFixtures(t, db)

	body := markBody(f, "2026-02-10", constants.AttendancePresent)
	body["student_id"] = 999
	resp := testutil.Request(t, app, http.MethodPost, "/api/attendance", f.token, body)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Студент не найден", testutil.Message(t, resp))

	body = markBody(f, "2026-02-10", constants.AttendancePresent)
	body["schedule_id"] = 999
	resp = testutil.Request(t, app, http.MethodPost, "/api/attendance", f.token, body)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Расписание не найдено", testutil.Message(t, resp))
}
