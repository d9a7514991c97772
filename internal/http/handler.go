package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "taskboard.com/taskboard/internal/data_models"
	apperrors "taskboard.com/taskboard/internal/errors"
	"taskboard.com/taskboard/internal/http/validators"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/services"
)

type Handler struct {
	taskService         *services.TaskService
	autocompleteService *services.AutocompleteService
}

func NewHandler(taskService *services.TaskService, autocompleteService *services.AutocompleteService) *Handler {
	return &Handler{
		taskService:         taskService,
		autocompleteService: autocompleteService,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	query := repository.TaskQuery{
		Search:    c.QueryParam("search"),
		SortField: c.QueryParam("sortField"),
		SortOrder: c.QueryParam("sortOrder"),
		Page:      intQueryParam(c, "page"),
		Limit:     intQueryParam(c, "limit"),
	}

	result, err := h.taskService.ListTasks(c.Request().Context(), query)
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), "failed to list tasks")
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrTaskIDRequired.Message)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, &req)
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrTaskIDRequired.Message)
	}

	if _, err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Autocomplete(c echo.Context) error {
	var req dto.AutocompleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}

	text, err := h.autocompleteService.Autocomplete(c.Request().Context(), req.Title, req.Description)
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusOK, text)
}

func (h *Handler) Health(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// intQueryParam treats a missing or unparseable value as absent; the query
// builder fills the default.
func intQueryParam(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
