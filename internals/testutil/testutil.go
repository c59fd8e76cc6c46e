// Package testutil — общий каркас для интеграционных тестов контроллеров:
// sqlite в памяти + полностью смонтированное приложение.
package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "shkola_backend/internals/databases"
	helper "shkola_backend/internals/helpers"
	"shkola_backend/internals/route"
)

// NewDB открывает чистую sqlite-базу в памяти и прогоняет миграции.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// одно соединение: каждая :memory: база живёт в своём коннекте
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// NewApp собирает приложение с теми же маршрутами и обработчиком ошибок,
// что и в продакшене.
func NewApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
	})
	route.SetupRoutes(app, db)
	return app
}

// Request выполняет запрос к приложению; body сериализуется в JSON.
func Request(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Decode читает JSON-тело ответа в out.
func Decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, sonic.Unmarshal(raw, out), "body: %s", string(raw))
}

// Message достаёт поле message из тела ошибки.
func Message(t *testing.T, resp *http.Response) string {
	t.Helper()

	var payload struct {
		Message string `json:"message"`
	}
	Decode(t, resp, &payload)
	return payload.Message
}
