package client_test

import (
	"context"
	"errors"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shkola_backend/client"
	teacherDTO "shkola_backend/internals/features/teachers/dto"
	"shkola_backend/internals/testutil"
)

// поднимает приложение на реальном порту — клиент ходит по сети
func startServer(t *testing.T) (*client.Client, *gorm.DB) {
	t.Helper()

	db := testutil.NewDB(t)
	app := testutil.NewApp(t, db)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})

	return client.New("http://" + ln.Addr().String()), db
}

func TestClientTeacherFlow(t *testing.T) {
	c, _ := startServer(t)
	ctx := context.Background()

	room := "каб. 301"
	created, err := c.RegisterTeacher(ctx, &teacherDTO.RegisterTeacherRequest{
		FirstName: "Вера",
		LastName:  "Климова",
		Email:     "klimova@shkola.ru",
		Password:  "secret123",
		Room:      &room,
		Subject:   "Биология",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	login, err := c.LoginTeacher(ctx, "klimova@shkola.ru", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, login.TeacherID)
	assert.NotEmpty(t, c.Token)

	got, err := c.GetTeacher(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Биология", got.Subject)

	subject := "Экология"
	updated, err := c.UpdateTeacher(ctx, created.ID, &teacherDTO.UpdateTeacherRequest{Subject: &subject})
	require.NoError(t, err)
	assert.Equal(t, "Экология", updated.Subject)

	page, err := c.ListTeachers(ctx, url.Values{"subject": {"Экология"}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, 1, page.Page)

	require.NoError(t, c.DeleteTeacher(ctx, created.ID))
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	c, _ := startServer(t)
	ctx := context.Background()

	// без токена защищённый список отдаёт 401 с русским сообщением
	_, err := c.ListTeachers(ctx, nil)
	require.Error(t, err)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.Equal(t, "Не авторизован", apiErr.Message)

	_, err = c.LoginTeacher(ctx, "none@shkola.ru", "x")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "Учитель не найден", apiErr.Message)
}
