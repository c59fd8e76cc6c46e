package controller_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shkola_backend/internals/constants"
	teacherModel "shkola_backend/internals/features/teachers/model"
	helper "shkola_backend/internals/helpers"
	"shkola_backend/internals/testutil"
)

func seedTeacher(t *testing.T, db *gorm.DB, email, subject string) *teacherModel.TeacherModel {
	t.Helper()

	hash, err := helper.HashPassword("secret123")
	require.NoError(t, err)

	m := &teacherModel.TeacherModel{
		FirstName: "Олег",
		LastName:  "Громов",
		Email:     email,
		Password:  hash,
		Subject:   subject,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func teacherToken(t *testing.T, id uint) string {
	t.Helper()
	tok, err := helper.SignPrincipalToken(constants.ClaimTeacherID, id)
	require.NoError(t, err)
	return tok
}

func adminToken(t *testing.T) string {
	t.Helper()
	tok, err := helper.SignPrincipalToken(constants.ClaimAdminID, 1)
	require.NoError(t, err)
	return tok
}

func TestTeacherRegistration(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)

	room := "каб. 215"
	body := map[string]any{
		"first_name": "Олег",
		"last_name":  "Громов",
		"email":      "gromov@shkola.ru",
		"password":   "secret123",
		"room":       room,
		"subject":    "Информатика",
	}
	resp := testutil.Request(t, app, http.MethodPost, "/api/teachers/registration", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID      uint    `json:"id"`
		Subject string  `json:"subject"`
		Room    *string `json:"room"`
	}
	testutil.Decode(t, resp, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Информатика", created.Subject)
	require.NotNil(t, created.Room)
	assert.Equal(t, room, *created.Room)

	dup := testutil.Request(t, app, http.MethodPost, "/api/teachers/registration", "", body)
	require.Equal(t, http.StatusBadRequest, dup.StatusCode)
	assert.Equal(t, "Учитель с таким email уже существует", testutil.Message(t, dup))
}

func TestTeacherLoginAndAuth(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	teacher := seedTeacher(t, db, "login@shkola.ru", "Физика")

	resp := testutil.Request(t, app, http.MethodPost, "/api/teachers/login", "",
		map[string]string{"email": "login@shkola.ru", "password": "secret123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token     string `json:"token"`
		TeacherID uint   `json:"teacherId"`
		Role      string `json:"role"`
	}
	testutil.Decode(t, resp, &out)
	assert.Equal(t, teacher.ID, out.TeacherID)
	assert.Equal(t, constants.RoleTeacher, out.Role)

	missing := testutil.Request(t, app, http.MethodPost, "/api/teachers/login", "",
		map[string]string{"email": "none@shkola.ru", "password": "secret123"})
	require.Equal(t, http.StatusNotFound, missing.StatusCode)
	assert.Equal(t, "Учитель не найден", testutil.Message(t, missing))
}

func TestTeacherListFilters(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)

	seedTeacher(t, db, "math1@shkola.ru", "Математика")
	seedTeacher(t, db, "math2@shkola.ru", "Математика")
	seedTeacher(t, db, "phys@shkola.ru", "Физика")

	var out struct {
		Data []struct {
			Email string `json:"email"`
		} `json:"data"`
		Total int64 `json:"total"`
	}

	path := "/api/teachers?subject=" + url.QueryEscape("Математика")
	resp := testutil.Request(t, app, http.MethodGet, path, adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.Decode(t, resp, &out)
	assert.EqualValues(t, 2, out.Total)

	resp = testutil.Request(t, app, http.MethodGet, "/api/teachers?search=phys", adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.Decode(t, resp, &out)
	assert.EqualValues(t, 1, out.Total)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "phys@shkola.ru", out.Data[0].Email)
}

func TestTeacherUpdateByAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	teacher := seedTeacher(t, db, "upd@shkola.ru", "История")
	other := seedTeacher(t, db, "other@shkola.ru", "История")

	path := fmt.Sprintf("/api/teachers/%d", teacher.ID)

	// чужой учитель — запрещено
	resp := testutil.Request(t, app, http.MethodPut, path, teacherToken(t, other.ID),
		map[string]any{"subject": "Обществознание"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// администратор — можно
	resp = testutil.Request(t, app, http.MethodPut, path, adminToken(t),
		map[string]any{"subject": "Обществознание"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Subject string `json:"subject"`
	}
	testutil.Decode(t, resp, &updated)
	assert.Equal(t, "Обществознание", updated.Subject)
}

func TestTeacherDeleteSelfOnly(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)
	teacher := seedTeacher(t, db, "del@shkola.ru", "Химия")

	path := fmt.Sprintf("/api/teachers/%d", teacher.ID)

	resp := testutil.Request(t, app, http.MethodDelete, path, adminToken(t), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Нет прав для удаления этого профиля", testutil.Message(t, resp))

	resp = testutil.Request(t, app, http.MethodDelete, path, teacherToken(t, teacher.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Учитель успешно удалён", testutil.Message(t, resp))
}
