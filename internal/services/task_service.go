package services

import (
	"context"
	"strings"

	dto "taskboard.com/taskboard/internal/data_models"
	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
)

// TaskService is the validation layer in front of the repository: shape
// checks and the duplicate-title rule run here before anything is
// persisted, independently of the store's own unique index.
type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*model.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	taken, err := s.repo.TitleTaken(ctx, title, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrDuplicateTitle
	}

	task := &model.Task{
		Title:       title,
		Description: req.Description,
		IsCompleted: false,
		Priority:    model.DefaultPriority,
	}
	if req.CreatedAt != nil {
		task.CreatedAt = req.CreatedAt.UTC()
	}
	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, q repository.TaskQuery) (*repository.PaginatedTasks, error) {
	return s.repo.FindFiltered(ctx, q)
}

// UpdateTask applies a partial patch. An empty patch is a no-op returning
// the current record.
func (s *TaskService) UpdateTask(ctx context.Context, id string, req *dto.UpdateTaskRequest) (*model.Task, error) {
	if req.Empty() {
		return s.repo.FindByID(ctx, id)
	}

	changes := map[string]interface{}{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.ErrTitleRequired
		}
		taken, err := s.repo.TitleTaken(ctx, title, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrDuplicateTitle
		}
		changes["title"] = title
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.CreatedAt != nil {
		changes["created_at"] = req.CreatedAt.UTC()
	}
	if req.IsCompleted != nil {
		changes["is_completed"] = *req.IsCompleted
	}
	if req.Priority != nil {
		changes["priority"] = *req.Priority
	}

	return s.repo.UpdateTask(ctx, id, changes)
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) (*model.Task, error) {
	return s.repo.DeleteTask(ctx, id)
}
