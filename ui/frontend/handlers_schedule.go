package frontend

import (
	"net/http"

	"github.com/casual-erp/casual-web/ui/service"
)

func (rt *router) handleSchedule(w http.ResponseWriter, r *http.Request, _ int64) error {
	schedule, err := rt.svc.ListSchedule(r.Context())
	if err != nil {
		return err
	}
	list, err := rt.overview("schedule", orElse(schedule, "No scheduled items"), 1, "main")
	if err != nil {
		return err
	}
	form, err := rt.createForm("add-schedule", "/schedule", service.ScheduleFormFields, nil, nil, false)
	if err != nil {
		return err
	}
	return rt.page(w, r, list, form)
}

func (rt *router) handleAddSchedule(w http.ResponseWriter, r *http.Request, _ int64) error {
	fields, err := readForm(r, "date")
	if err != nil {
		return err
	}
	id, err := rt.svc.AddSchedule(r.Context(), fields)
	if err != nil {
		return err
	}
	return rt.created(w, "schedule", id, "Go to schedule")
}

func (rt *router) handleRemoveSchedule(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing id")
	}
	ok, err := rt.svc.RemoveSchedule(r.Context(), id)
	if err != nil {
		return err
	}
	return removed(w, ok)
}
