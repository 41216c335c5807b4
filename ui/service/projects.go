package service

import (
	"context"

	"github.com/casual-erp/casual-web/ccli"
)

var projectFlags = []flagField{
	{"-t", "title"},
	{"-d", "description"},
	{"-c", "client_id"},
}

// ProjectFormFields lists the add-project form fields in display order.
var ProjectFormFields = []string{"title", "description", "client_id"}

// ListProjects returns the HTML project listing.
func (s *Service) ListProjects(ctx context.Context) (string, error) {
	return s.html(ctx, ccli.ProgramProject, "ls", nil)
}

// GetProject returns one project.
func (s *Service) GetProject(ctx context.Context, id int64) (Record, error) {
	return s.record(ctx, ccli.ProgramProject, "get", id)
}

// ProjectOptions returns project choices labelled by title.
func (s *Service) ProjectOptions(ctx context.Context) ([]Option, error) {
	records, err := s.records(ctx, ccli.ProgramProject, "list", nil)
	if err != nil {
		return nil, err
	}
	return optionsFrom(records, func(r Record) string { return r.String("title") }), nil
}

// AddProject creates a project and returns its id.
func (s *Service) AddProject(ctx context.Context, fields Fields) (string, error) {
	return s.value(ctx, ccli.ProgramProject, "add", argsFrom(fields, projectFlags))
}

// UpdateProject updates a project and returns its id.
func (s *Service) UpdateProject(ctx context.Context, id int64, fields Fields) (string, error) {
	return s.value(ctx, ccli.ProgramProject, "update", argsFrom(fields, projectFlags, ccli.ID(id)))
}

// RemoveProject deletes a project.
func (s *Service) RemoveProject(ctx context.Context, id int64) (bool, error) {
	return s.remove(ctx, ccli.ProgramProject, "remove", id)
}

// ListTasks returns the HTML task listing of a project.
func (s *Service) ListTasks(ctx context.Context, projectID int64) (string, error) {
	return s.html(ctx, ccli.ProgramProject, "list-tasks", ccli.Args{ccli.ID(projectID)})
}

// ListQuotes returns the HTML quote listing of a project.
func (s *Service) ListQuotes(ctx context.Context, projectID int64) (string, error) {
	return s.html(ctx, ccli.ProgramProject, "list-quotes", ccli.Args{ccli.FInt("-p", projectID)})
}

// ListInvoices returns the HTML invoice listing of a project.
func (s *Service) ListInvoices(ctx context.Context, projectID int64) (string, error) {
	return s.html(ctx, ccli.ProgramProject, "list-invoices", ccli.Args{ccli.FInt("-p", projectID)})
}
