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

func seedClass(t *testing.T, db *gorm.DB) *classModel.ClassModel {
	t.Helper()

	teacher := &teacherModel.TeacherModel{
		FirstName: "Ольга",
		LastName:  "Петрова",
		Email:     "petrova@shkola.ru",
		Password:  "x",
		Subject:   "Математика",
	}
	require.NoError(t, db.Create(teacher).Error)

	class := &classModel.ClassModel{
		Name:           "5А",
		ClassTeacherID: teacher.ID,
		AcademicYear:   "2025/2026",
	}
	require.NoError(t, db.Create(class).Error)
	return class
}

func seedStudent(t *testing.T, db *gorm.DB, classID uint, email string) *studentModel.StudentModel {
	t.Helper()

	hash, err := helper.HashPassword("secret123")
	require.NoError(t, err)
	birth, err := dbtime.ParseDate("2012-09-01")
	require.NoError(t, err)

	s := &studentModel.StudentModel{
		FirstName: "Иван",
		LastName:  "Иванов",
		Email:     email,
		Password:  hash,
		BirthDate: birth,
		ClassID:   classID,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := helper.SignPrincipalToken(constants.ClaimAdminID, 1)
	require.NoError(t, err)
	return token
}

func studentToken(t *testing.T, id uint) string {
	t.Helper()
	token, err := helper.SignPrincipalToken(constants.ClaimStudentID, id)
	require.NoError(t, err)
	return token
}

func TestStudentRegistration(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	class := seedClass(t, db)

	body := map[string]any{
		"first_name": "Анна",
		"last_name":  "Соколова",
		"email":      "sokolova@shkola.ru",
		"password":   "secret123",
		"birth_date": "2010-01-01",
		"class_id":   class.ID,
	}

	resp := testutil.Request(t, app, http.MethodPost, "/api/students/registration", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID        uint   `json:"id"`
		Email     string `json:"email"`
		BirthDate string `json:"birth_date"`
		ClassID   uint   `json:"class_id"`
	}
	testutil.Decode(t, resp, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "sokolova@shkola.ru", created.Email)
	assert.Equal(t, "2010-01-01", created.BirthDate)
	assert.Equal(t, class.ID, created.ClassID)

	// пароль не должен утекать в ответ
	var raw map[string]any
	one := testutil.Request(t, app, http.MethodGet, fmt.Sprintf("/api/students/%d", created.ID), adminToken(t), nil)
	require.Equal(t, http.StatusOK, one.StatusCode)
	testutil.Decode(t, one, &raw)
	assert.NotContains(t, raw, "password")

	// повтор с тем же email
	dup := testutil.Request(t, app, http.MethodPost, "/api/students/registration", "", body)
	require.Equal(t, http.StatusBadRequest, dup.StatusCode)
	assert.Equal(t, "Студент с таким email уже существует", testutil.Message(t, dup))
}

func TestStudentRegistrationUnknownClass(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)

	body := map[string]any{
		"first_name": "Анна",
		"last_name":  "Соколова",
		"email":      "sokolova@shkola.ru",
		"password":   "secret123",
		"birth_date": "2010-01-01",
		"class_id":   999,
	}

	resp := testutil.Request(t, app, http.MethodPost, "/api/students/registration", "", body)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Класс не найден", testutil.Message(t, resp))
}

func TestStudentLogin(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	class := seedClass(t, db)
	student := seedStudent(t, db, class.ID, "ivanov@shkola.ru")

	t.Run("unknown email", func(t *testing.T) {
		resp := testutil.Request(t, app, http.MethodPost, "/api/students/login", "",
			map[string]string{"email": "nobody@shkola.ru", "password": "secret123"})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Студент не найден", testutil.Message(t, resp))
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := testutil.Request(t, app, http.MethodPost, "/api/students/login", "",
			map[string]string{"email": "ivanov@shkola.ru", "password": "wrong"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Неверный пароль", testutil.Message(t, resp))
	})

	t.Run("ok", func(t *testing.T) {
		resp := testutil.Request(t, app, http.MethodPost, "/api/students/login", "",
			map[string]string{"email": "ivanov@shkola.ru", "password": "secret123"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Token     string `json:"token"`
			StudentID uint   `json:"studentId"`
			Role      string `json:"role"`
		}
		testutil.Decode(t, resp, &out)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, student.ID, out.StudentID)
		assert.Equal(t, constants.RoleStudent, out.Role)

		// токен работает на /auth
		auth := testutil.Request(t, app, http.MethodGet, "/api/students/auth", out.Token, nil)
		require.Equal(t, http.StatusOK, auth.StatusCode)
	})
}

func TestStudentListRequiresAuth(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)

	resp := testutil.Request(t, app, http.MethodGet, "/api/students", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Не авторизован", testutil.Message(t, resp))
}

func TestStudentUpdateAuthorization(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	class := seedClass(t, db)
	first := seedStudent(t, db, class.ID, "first@shkola.ru")
	second := seedStudent(t, db, class.ID, "second@shkola.ru")

	path := fmt.Sprintf("/api/students/%d", first.ID)
	body := map[string]any{"first_name": "Пётр"}

	// чужой студент — запрещено
	resp := testutil.Request(t, app, http.MethodPut, path, studentToken(t, second.ID), body)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Нет прав для обновления этого профиля", testutil.Message(t, resp))

	// сам студент — можно
	resp = testutil.Request(t, app, http.MethodPut, path, studentToken(t, first.ID), body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// администратор — можно
	resp = testutil.Request(t, app, http.MethodPut, path, adminToken(t),
		map[string]any{"last_name": "Сидоров"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	testutil.Decode(t, resp, &updated)
	assert.Equal(t, "Пётр", updated.FirstName)
	assert.Equal(t, "Сидоров", updated.LastName)
}

func TestStudentDeleteSelfOnly(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	class := seedClass(t, db)
	student := seedStudent(t, db, class.ID, "gone@shkola.ru")

	path := fmt.Sprintf("/api/students/%d", student.ID)

	resp := testutil.Request(t, app, http.MethodDelete, path, adminToken(t), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = testutil.Request(t, app, http.MethodDelete, path, studentToken(t, student.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Студент успешно удалён", testutil.Message(t, resp))

	resp = testutil.Request(t, app, http.MethodGet, path, adminToken(t), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStudentListPagination(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	class := seedClass(t, db)

	for i := 0; i < 15; i++ {
		seedStudent(t, db, class.ID, fmt.Sprintf("student%02d@shkola.ru", i))
	}

	var out struct {
		Data       []map[string]any `json:"data"`
		Total      int64            `json:"total"`
		Page       int              `json:"page"`
		TotalPages int              `json:"totalPages"`
	}

	resp := testutil.Request(t, app, http.MethodGet, "/api/students?page=2&limit=10", adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.Decode(t, resp, &out)

	assert.Len(t, out.Data, 5)
	assert.EqualValues(t, 15, out.Total)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 2, out.TotalPages)
}

func TestStudentListFilterByClass(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	class := seedClass(t, db)

	other := &classModel.ClassModel{Name: "6Б", ClassTeacherID: class.ClassTeacherID, AcademicYear: "2025/2026"}
	require.NoError(t, db.Create(other).Error)

	seedStudent(t, db, class.ID, "a@shkola.ru")
	seedStudent(t, db, class.ID, "b@shkola.ru")
	seedStudent(t, db, other.ID, "c@shkola.ru")

	var out struct {
		Data  []map[string]any `json:"data"`
		Total int64            `json:"total"`
	}

	path := fmt.Sprintf("/api/students?class_id=%d", other.ID)
	resp := testutil.Request(t, app, http.MethodGet, path, adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.Decode(t, resp, &out)

	assert.EqualValues(t, 1, out.Total)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "c@shkola.ru", out.Data[0]["email"])
}
