package http

import (
	"time"

	"task-chat-agent/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
	}
}

type listReq struct {
	IncludeCompleted *bool `form:"include_completed"`
}

func (r listReq) toInput() task.ListInput {
	include := true
	if r.IncludeCompleted != nil {
		include = *r.IncludeCompleted
	}
	return task.ListInput{IncludeCompleted: include}
}

// updateReq is a partial update: absent fields are left unchanged.
type updateReq struct {
	ID          string  `json:"-"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
	}
}

type completeReq struct {
	ID        string `json:"-"`
	Completed *bool  `json:"completed"`
}

func (r completeReq) toInput() task.CompleteInput {
	completed := true
	if r.Completed != nil {
		completed = *r.Completed
	}
	return task.CompleteInput{ID: r.ID, Completed: completed}
}

// --- Response DTOs ---

type taskResp struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTaskResp(t task.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type itemResp struct {
	Task taskResp `json:"task"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks}
}

type deleteResp struct {
	Success bool  `json:"success"`
	TaskID  int64 `json:"task_id"`
}
