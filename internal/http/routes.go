package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "taskboard.com/taskboard/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/healthz", h.Health)

	e.GET("/api", h.ListTasks)
	e.POST("/api", h.CreateTask)
	e.PUT("/api", h.UpdateTask)
	e.DELETE("/api", h.DeleteTask)
	e.POST("/api/autocompletion", h.Autocomplete)
}
