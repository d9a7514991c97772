package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskboard.com/taskboard/internal/completion"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/services"
)

type fakeCompletionClient struct {
	text  string
	err   error
	calls int
}

func (f *fakeCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func setupTestApp(t *testing.T, client completion.Client) *echo.Echo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	taskService := services.NewTaskService(repository.NewTaskRepository(db))
	autocompleteService := services.NewAutocompleteService(client, nil, time.Hour)

	e := echo.New()
	Register(e, NewHandler(taskService, autocompleteService), 100000)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createTaskViaAPI(t *testing.T, e *echo.Echo, body string) model.Task {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/api", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating task, got %d: %s", rec.Code, rec.Body.String())
	}

	var task model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode created task: %v", err)
	}
	return task
}

func TestCreateTaskEndpoint(t *testing.T) {
	e := setupTestApp(t, &fakeCompletionClient{})

	task := createTaskViaAPI(t, e, `{"title":"X"}`)

	if task.ID == "" {
		t.Error("expected id in the created record")
	}
	if task.IsCompleted || task.Priority != 3 || task.CreatedAt.IsZero() {
		t.Errorf("expected defaults isCompleted=false priority=3 createdAt=now, got %+v", task)
	}
}

func TestCreateTaskEndpointMissingTitle(t *testing.T) {
	e := setupTestApp(t, &fakeCompletionClient{})

	rec := doJSON(e, http.MethodPost, "/api", `{"description":"no title"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCreateTaskEndpointDuplicateTitle(t *testing.T) {
	e := setupTestApp(t, &fakeCompletionClient{})

	createTaskViaAPI(t, e, `{"title":"Same"}`)

	rec := doJSON(e, http.MethodPost, "/api", `{"title":"Same"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a duplicate title, got %d", rec.Code)
	}
}

func TestListTasksEndpoint(t *testing.T) {
	e := setupTestApp(t, &fakeCompletionClient{})

	createTaskViaAPI(t, e, `{"title":"A","priority":1}`)
	createTaskViaAPI(t, e, `{"title":"B","priority":2}`)

	rec := doJSON(e, http.MethodGet, "/api?sortField=priority&sortOrder=desc&page=1&limit=10", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result repository.PaginatedTasks
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}

	if result.Total != 2 || result.Page != 1 || result.TotalPages != 1 {
		t.Errorf("expected total=2 page=1 totalPages=1, got %+v", result)
	}
	if len(result.Tasks) != 2 || result.Tasks[0].Title != "B" || result.Tasks[1].Title != "A" {
		t.Errorf("expected [B, A], got %+v", result.Tasks)
	}
}

func TestListTasksEndpointEmptyResult(t *testing.T) {
	e := setupTestApp(t, &fakeCompletionClient{})

	rec := doJSON(e, http.MethodGet, "/api?search=zzz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `"tasks":[]`) {
		t.Errorf("expected an empty tasks array, got %s", body)
	}
	if !strings.Contains(body, `"totalPages":0`) {
		t.Errorf("expected totalPages 0, got %s", body)
	}
}

func TestUpdateTaskEndpoint(t *testing.T) {
	e := setupTestApp(t, &fakeCompletionClient{})

	task := createTaskViaAPI(t, e, `{"title":"To update"}`)

	rec := doJSON(e, http.MethodPut, "/api?id="+task.ID, `{"isCompleted":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode updated task: %v", err)
	}
	if !updated.IsCompleted || updated.Title != "To update" {
		t.Errorf("expected a partial update, got %+v", updated)
	}
}

func TestUpdateTaskEndpointMissingID(t *testing.T) {
	e := setupTestApp(t, &fakeCompletionClient{})

	rec := doJSON(e, http.MethodPut, "/api", `{"isCompleted":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without an id, got %d", rec.Code)
	}
}

func TestUpdateTaskEndpointNotFound(t *testing.T) {
	e := setupTestApp(t, &fakeCompletionClient{})

	rec := doJSON(e, http.MethodPut, "/api?id=missing-id", `{"isCompleted":true}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteTaskEndpoint(t *testing.T) {
	e := setupTestApp(t, &fakeCompletionClient{})

	task := createTaskViaAPI(t, e, `{"title":"To delete"}`)

	rec := doJSON(e, http.MethodDelete, "/api?id="+task.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodDelete, "/api?id="+task.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 deleting the same task twice, got %d", rec.Code)
	}
}

func TestAutocompleteEndpoint(t *testing.T) {
	client := &fakeCompletionClient{text: "A helpful description."}
	e := setupTestApp(t, client)

	rec := doJSON(e, http.MethodPost, "/api/autocompletion", `{"title":"Buy milk"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var text string
	if err := json.Unmarshal(rec.Body.Bytes(), &text); err != nil {
		t.Fatalf("failed to decode generated text: %v", err)
	}
	if text != client.text {
		t.Errorf("expected generated text, got %q", text)
	}
}

func TestAutocompleteEndpointMissingTitle(t *testing.T) {
	client := &fakeCompletionClient{text: "never"}
	e := setupTestApp(t, client)

	rec := doJSON(e, http.MethodPost, "/api/autocompletion", `{"description":"only"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if client.calls != 0 {
		t.Errorf("expected no external call, got %d", client.calls)
	}
}

func TestAutocompleteEndpointExternalFailure(t *testing.T) {
	client := &fakeCompletionClient{err: errors.New("upstream down")}
	e := setupTestApp(t, client)

	rec := doJSON(e, http.MethodPost, "/api/autocompletion", `{"title":"Buy milk"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	e := setupTestApp(t, &fakeCompletionClient{})

	rec := doJSON(e, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
