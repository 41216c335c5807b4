package frontend

import (
	"html/template"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/casual-erp/casual-web/ui/service"
)

// handleTask answers with a fragment only; task views are always loaded
// into the project page.
func (rt *router) handleTask(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing task id")
	}

	var (
		projectIDs []service.Option
		task       service.Record
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { projectIDs, err = rt.svc.ProjectOptions(ctx); return })
	g.Go(func() (err error) { task, err = rt.svc.GetTask(ctx, id); return })
	if err := g.Wait(); err != nil {
		return err
	}

	tid := strconv.FormatInt(id, 10)
	form, err := rt.updateForm("update-task", "/tasks/"+tid, task,
		service.Options{"project_id": projectIDs}, true)
	if err != nil {
		return err
	}
	complete, err := rt.renderer.renderFragment("complete-task-button", tid)
	if err != nil {
		return err
	}
	return writeHTML(w, title(task.String("title"), 3)+form+complete)
}

// handleAddTask creates a task under the project in the path.
func (rt *router) handleAddTask(w http.ResponseWriter, r *http.Request, projectID int64) error {
	fields, err := readForm(r)
	if err != nil {
		return err
	}
	if projectID == 0 {
		return badRequest("Missing project id")
	}
	if !fields.Present("title") {
		return badRequest("Missing title")
	}
	id, err := rt.svc.AddTask(r.Context(), projectID, fields)
	if err != nil {
		return err
	}
	return writeHTML(w, idOrDone(id))
}

func (rt *router) handleUpdateTask(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing id")
	}
	fields, err := readForm(r)
	if err != nil {
		return err
	}

	var updated string
	if fields.Get("complete") == "true" {
		updated, err = rt.svc.CompleteTask(r.Context(), id)
	} else {
		updated, err = rt.svc.UpdateTask(r.Context(), id, fields)
	}
	if err != nil {
		return err
	}
	return writeHTML(w, idOrDone(updated))
}

func (rt *router) handleRemoveTask(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing id")
	}
	ok, err := rt.svc.RemoveTask(r.Context(), id)
	if err != nil {
		return err
	}
	return removed(w, ok)
}

func idOrDone(id string) template.HTML {
	if id == "" {
		return "Done"
	}
	return template.HTML(template.HTMLEscapeString(id))
}
