package service

import (
	"context"

	"github.com/casual-erp/casual-web/ccli"
)

var taskFlags = []flagField{
	{"-t", "title"},
	{"-d", "description"},
	{"--minutes-estimated", "minutes_estimated"},
	{"--minutes-spent", "minutes_spent"},
	{"--minutes-remaining", "minutes_remaining"},
	{"--minutes-billed", "minutes_billed"},
	{"--minute-rate", "minute_rate"},
}

// TaskFormFields lists the add-task form fields in display order.
var TaskFormFields = []string{
	"title", "description", "minutes_estimated", "minutes_spent",
	"minutes_remaining", "minutes_billed", "minute_rate",
}

// GetTask returns one task.
func (s *Service) GetTask(ctx context.Context, id int64) (Record, error) {
	return s.record(ctx, ccli.ProgramProject, "get-task", id)
}

// AddTask creates a task under a project and returns its id.
func (s *Service) AddTask(ctx context.Context, projectID int64, fields Fields) (string, error) {
	return s.value(ctx, ccli.ProgramProject, "add-task", argsFrom(fields, taskFlags, ccli.FInt("-p", projectID)))
}

// UpdateTask updates a task and returns its id.
func (s *Service) UpdateTask(ctx context.Context, id int64, fields Fields) (string, error) {
	return s.value(ctx, ccli.ProgramProject, "update-task", argsFrom(fields, taskFlags, ccli.ID(id)))
}

// CompleteTask marks a task as done.
func (s *Service) CompleteTask(ctx context.Context, id int64) (string, error) {
	return s.value(ctx, ccli.ProgramProject, "complete-task", ccli.Args{ccli.ID(id)})
}

// RemoveTask deletes a task.
func (s *Service) RemoveTask(ctx context.Context, id int64) (bool, error) {
	return s.remove(ctx, ccli.ProgramProject, "remove-task", id)
}
