package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTask persists a new task, assigning the id and creation time at the
// storage boundary. The unique title index backs up the service-level
// duplicate check against races.
func (r *TaskRepository) CreateTask(ctx context.Context, task *model.Task) error {
	task.ID = uuid.NewString()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateTitle
		}
		return apperrors.ErrStorageUnavailable.Wrap(err)
	}

	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.ErrStorageUnavailable.Wrap(err)
	}
	return &task, nil
}

// FindFiltered executes the filter/sort/skip/limit pipeline and a separate
// count of the same filter. A page past the end yields an empty slice with
// still-correct totals.
func (r *TaskRepository) FindFiltered(ctx context.Context, q TaskQuery) (*PaginatedTasks, error) {
	q = q.normalize()

	var tasks []model.Task
	err := q.filter(r.db.WithContext(ctx)).
		Order(q.order()).
		Offset(q.offset()).
		Limit(q.Limit).
		Find(&tasks).Error
	if err != nil {
		return nil, apperrors.ErrStorageUnavailable.Wrap(err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	var total int64
	err = q.filter(r.db.WithContext(ctx).Model(&model.Task{})).Count(&total).Error
	if err != nil {
		return nil, apperrors.ErrStorageUnavailable.Wrap(err)
	}

	return &PaginatedTasks{
		Tasks:      tasks,
		Total:      total,
		Page:       q.Page,
		TotalPages: totalPages(total, q.Limit),
	}, nil
}

// TitleTaken reports whether another task already uses the given title.
// excludeID skips the record being updated.
func (r *TaskRepository) TitleTaken(ctx context.Context, title, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Task{}).Where("title = ?", title)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, apperrors.ErrStorageUnavailable.Wrap(err)
	}
	return count > 0, nil
}

// UpdateTask applies a non-empty column patch to the record identified by id
// and returns the updated record.
func (r *TaskRepository) UpdateTask(ctx context.Context, id string, changes map[string]interface{}) (*model.Task, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(changes)

	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateTitle
		}
		return nil, apperrors.ErrStorageUnavailable.Wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	return r.FindByID(ctx, id)
}

// DeleteTask removes the record identified by id and returns it.
func (r *TaskRepository) DeleteTask(ctx context.Context, id string) (*model.Task, error) {
	task, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error; err != nil {
		return nil, apperrors.ErrStorageUnavailable.Wrap(err)
	}

	return task, nil
}
