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
	studentModel "shkola_backend/internals/features/students/model"
	teacherModel "shkola_backend/internals/features/teachers/model"
	helper "shkola_backend/internals/helpers"
	"shkola_backend/internals/helpers/dbtime"
	"shkola_backend/internals/testutil"
)

type fixtures struct {
	student *studentModel.StudentModel
	teacher *teacherModel.TeacherModel
	token   string
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	teacher := &teacherModel.TeacherModel{
		FirstName: "Михаил", LastName: "Фёдоров",
		Email: "fedorov@shkola.ru", Password: "x", Subject: "География",
	}
	require.NoError(t, db.Create(teacher).Error)

	class := &classModel.ClassModel{Name: "8А", ClassTeacherID: teacher.ID, AcademicYear: "2025/2026"}
	require.NoError(t, db.Create(class).Error)

	birth, err := dbtime.ParseDate("2011-11-02")
	require.NoError(t, err)
	student := &studentModel.StudentModel{
		FirstName: "Татьяна", LastName: "Смирнова",
		Email: "smirnova@shkola.ru", Password: "x",
		BirthDate: birth, ClassID: class.ID,
	}
	require.NoError(t, db.Create(student).Error)

	token, err := helper.SignPrincipalToken(constants.ClaimTeacherID, teacher.ID)
	require.NoError(t, err)

	return fixtures{student: student, teacher: teacher, token: token}
}

func gradeBody(f fixtures, value float64, date string) map[string]any {
	return map[string]any{
		"student_id":  f.student.ID,
		"teacher_id":  f.teacher.ID,
		"grade_value": value,
		"date":        date,
	}
}

func TestGradeRoundTrip(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	f := seedFixtures(t, db)

	resp := testutil.Request(t, app, http.MethodPost, "/api/grades", f.token, gradeBody(f, 5, "2026-04-10"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID         uint    `json:"id"`
		GradeValue float64 `json:"grade_value"`
		Date       string  `json:"date"`
		Student    *struct {
			LastName string `json:"last_name"`
		} `json:"student"`
	}
	testutil.Decode(t, resp, &created)
	assert.EqualValues(t, 5, created.GradeValue)
	assert.Equal(t, "2026-04-10", created.Date)
	require.NotNil(t, created.Student)
	assert.Equal(t, "Смирнова", created.Student.LastName)

	path := fmt.Sprintf("/api/grades/%d", created.ID)
	resp = testutil.Request(t, app, http.MethodPut, path, f.token, map[string]any{"grade_value": 4})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = testutil.Request(t, app, http.MethodDelete, path, f.token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Оценка успешно удалена", testutil.Message(t, resp))

	resp = testutil.Request(t, app, http.MethodGet, path, f.token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Оценка не найдена", testutil.Message(t, resp))
}

func TestGradeReferenceChecks(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	f := seedFixtures(t, db)

	body := gradeBody(f, 4, "2026-04-10")
	body["student_id"] = 999
	resp := testutil.Request(t, app, http.MethodPost, "/api/grades", f.token, body)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Студент не найден", testutil.Message(t, resp))

	body = gradeBody(f, 4, "2026-04-10")
	body["teacher_id"] = 999
	resp = testutil.Request(t, app, http.MethodPost, "/api/grades", f.token, body)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Учитель не найден", testutil.Message(t, resp))
}

func TestGradeListPeriodFilter(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	f := seedFixtures(t, db)

	for i, date := range []string{"2026-04-01", "2026-04-15", "2026-05-01"} {
		resp := testutil.Request(t, app, http.MethodPost, "/api/grades", f.token,
			gradeBody(f, float64(i%3+3), date))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var out struct {
		Data []struct {
			Date string `json:"date"`
		} `json:"data"`
		Total int64 `json:"total"`
	}

	resp := testutil.Request(t, app, http.MethodGet,
		"/api/grades?start_date=2026-04-10&end_date=2026-04-30", f.token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.Decode(t, resp, &out)
	assert.EqualValues(t, 1, out.Total)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "2026-04-15", out.Data[0].Date)

	// без фильтра — свежие первыми
	resp = testutil.Request(t, app, http.MethodGet, "/api/grades", f.token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.Decode(t, resp, &out)
	require.Len(t, out.Data, 3)
	assert.Equal(t, "2026-05-01", out.Data[0].Date)
}
