package frontend

import (
	"errors"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/casual-erp/casual-web/ui/service"
)

func (rt *router) handleProjects(w http.ResponseWriter, r *http.Request, id int64) error {
	if id > 0 {
		project, err := rt.svc.GetProject(r.Context(), id)
		switch {
		case err == nil:
			return rt.projectDetail(w, r, id, project)
		case errors.Is(err, service.ErrNotFound):
			rt.logError(r, "project not found", err)
		default:
			return err
		}
	}

	var (
		projects  string
		clientIDs []service.Option
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { projects, err = rt.svc.ListProjects(ctx); return })
	g.Go(func() (err error) { clientIDs, err = rt.svc.AccountOptions(ctx); return })
	if err := g.Wait(); err != nil {
		return err
	}

	list, err := rt.overview("projects", orElse(projects, "No projects found"), 1, "main")
	if err != nil {
		return err
	}
	form, err := rt.createForm("add-project", "/projects", service.ProjectFormFields,
		service.Options{"client_id": clientIDs}, nil, false)
	if err != nil {
		return err
	}
	return rt.page(w, r, list, form)
}

func (rt *router) projectDetail(w http.ResponseWriter, r *http.Request, id int64, project service.Record) error {
	var (
		tasks, quotes, invoices string
		clientIDs               []service.Option
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { tasks, err = rt.svc.ListTasks(ctx, id); return })
	g.Go(func() (err error) { quotes, err = rt.svc.ListQuotes(ctx, id); return })
	g.Go(func() (err error) { invoices, err = rt.svc.ListInvoices(ctx, id); return })
	g.Go(func() (err error) { clientIDs, err = rt.svc.AccountOptions(ctx); return })
	if err := g.Wait(); err != nil {
		return err
	}

	pid := strconv.FormatInt(id, 10)
	makeQuote, err := rt.renderer.renderFragment("make-quote-button", pid)
	if err != nil {
		return err
	}
	form, err := rt.updateForm("update-project", "/projects/"+pid, project,
		service.Options{"client_id": clientIDs}, true)
	if err != nil {
		return err
	}
	taskList, err := rt.overview("tasks", orElse(tasks, "No tasks found"), 2, "task-view")
	if err != nil {
		return err
	}
	addTask, err := rt.createForm("add-task", "/tasks/"+pid, service.TaskFormFields, nil, nil, true)
	if err != nil {
		return err
	}
	quoteList, err := rt.overview("quotes", rt.publicURL(orElse(quotes, "No quotes found")), 2, "quote-view")
	if err != nil {
		return err
	}
	invoiceList, err := rt.overview("invoices", rt.publicURL(orElse(invoices, "No invoices found")), 2, "invoice-view")
	if err != nil {
		return err
	}
	return rt.page(w, r,
		title(project.String("title"), 1),
		makeQuote,
		form,
		"<br/>",
		taskList,
		addTask,
		"<br/>",
		quoteList,
		"<br/>",
		invoiceList,
	)
}

func (rt *router) handleAddProject(w http.ResponseWriter, r *http.Request, _ int64) error {
	fields, err := readForm(r, "title")
	if err != nil {
		return err
	}
	id, err := rt.svc.AddProject(r.Context(), fields)
	if err != nil {
		return err
	}
	return rt.created(w, "projects", id, "Go to new project")
}

func (rt *router) handleUpdateProject(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing id")
	}
	fields, err := readForm(r)
	if err != nil {
		return err
	}
	updated, err := rt.svc.UpdateProject(r.Context(), id, fields)
	if err != nil {
		return err
	}
	return rt.created(w, "projects", updated, "Go to updated project")
}

func (rt *router) handleRemoveProject(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing id")
	}
	ok, err := rt.svc.RemoveProject(r.Context(), id)
	if err != nil {
		return err
	}
	return removed(w, ok)
}
