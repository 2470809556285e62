package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"educrm/models"
	"educrm/services"
)

// newTestApp wires the group and payment endpoints against an in-memory
// database, without the JWT gate.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Student{},
		&models.Teacher{},
		&models.Course{},
		&models.Group{},
		&models.Enrollment{},
		&models.Payment{},
	))

	app := fiber.New()

	groups := NewGroupHandler(services.NewGroupService(db))
	app.Get("/groups/:id", groups.Get)
	app.Post("/groups", groups.Create)
	app.Delete("/groups/:id", groups.Delete)
	app.Post("/groups/:id/students", groups.Enroll)
	app.Delete("/groups/:id/students/:studentId", groups.Unenroll)

	payments := NewPaymentHandler(services.NewPaymentService(db))
	app.Post("/payments", payments.Create)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestGroupEndpointsEnrollAndDeleteGuard(t *testing.T) {
	app, db := newTestApp(t)

	student := models.Student{ID: uuid.New(), FullName: "Иван Петров", Email: "i@example.com", Status: "active"}
	require.NoError(t, db.Create(&student).Error)

	resp := doJSON(t, app, http.MethodPost, "/groups", fiber.Map{
		"name":      "PY-1",
		"courseId":  uuid.NewString(),
		"teacherId": uuid.NewString(),
		"schedule":  "Сб 10:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var group models.Group
	decodeBody(t, resp, &group)
	assert.Equal(t, "PY-1", group.Name)
	assert.Empty(t, group.StudentIDs)

	enrollBody := fiber.Map{"studentId": student.ID.String()}
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/groups/%s/students", group.ID), enrollBody)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/groups/%s/students", group.ID), enrollBody)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "duplicate enrollment")

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/groups/%s", group.ID), nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var errBody map[string]string
	decodeBody(t, resp, &errBody)
	assert.Equal(t, "Нельзя удалить группу, в которой есть студенты", errBody["error"])

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/groups/%s/students/%s", group.ID, student.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/groups/%s", group.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/groups/%s", group.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGroupGetMalformedIDIsNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/groups/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPaymentEndpointRejectsNonPositiveAmount(t *testing.T) {
	app, db := newTestApp(t)

	student := models.Student{ID: uuid.New(), FullName: "Иван Петров", Email: "i@example.com", Status: "active"}
	require.NoError(t, db.Create(&student).Error)

	resp := doJSON(t, app, http.MethodPost, "/payments", fiber.Map{
		"studentId": student.ID.String(),
		"amount":    0,
		"status":    "paid",
		"method":    "card",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
}
