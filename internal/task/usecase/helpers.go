package usecase

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"task-chat-agent/internal/task"
)

func (uc *implUseCase) parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || n <= 0 {
		return 0, task.ErrInvalidTaskID
	}
	return n, nil
}

func (uc *implUseCase) validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", task.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > task.MaxTitleLength {
		return "", task.ErrTitleTooLong
	}
	return title, nil
}

// validateDescription returns nil for a blank description.
func (uc *implUseCase) validateDescription(description string) (*string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(description) > task.MaxDescriptionLength {
		return nil, task.ErrDescriptionTooLong
	}
	return &description, nil
}

func (uc *implUseCase) validatePriority(priority string) (*string, error) {
	priority = strings.ToLower(strings.TrimSpace(priority))
	switch priority {
	case "":
		return nil, nil
	case task.PriorityHigh, task.PriorityMedium, task.PriorityLow:
		return &priority, nil
	}
	return nil, task.ErrInvalidPriority
}

func (uc *implUseCase) parseDueDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	due, err := uc.dateMath.Parse(value, uc.now())
	if err != nil {
		return nil, task.ErrInvalidDueDate
	}
	return &due, nil
}
