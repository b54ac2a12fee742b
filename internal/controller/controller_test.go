package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"notes-app-be/internal/pkg/logger"
	"notes-app-be/internal/pkg/serverutils"
	"notes-app-be/internal/pkg/testdb"
	"notes-app-be/internal/repository/memory"
	"notes-app-be/internal/repository/unitofwork"
	"notes-app-be/internal/service"
	"notes-app-be/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, service.INoteService) {
	t.Helper()
	log := logger.NewNopLogger()
	svc := service.NewNoteService(unitofwork.NewRepositoryFactory(testdb.New(t)), nil, log)

	app := fiber.New(fiber.Config{Views: view.NewEngine()})
	app.Use(serverutils.ErrorHandlerMiddleware(log))
	NewNoteController(svc).RegisterRoutes(app.Group("/api"))
	NewPageController(svc, memory.NewDraftRepository(time.Minute), log).RegisterRoutes(app)
	return app, svc
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
