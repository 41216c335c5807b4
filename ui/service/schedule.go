package service

import (
	"context"

	"github.com/casual-erp/casual-web/ccli"
)

var scheduleFlags = []flagField{
	{"--contract-id", "contract_id"},
	{"--project-id", "project_id"},
	{"--invoice-id", "invoice_id"},
	{"--quote-id", "quote_id"},
	{"--query-id", "query_id"},
	{"--date", "date"},
	{"--interval", "interval"},
}

// ScheduleFormFields lists the add-schedule form fields in display order.
var ScheduleFormFields = []string{
	"date", "interval", "contract_id", "project_id", "invoice_id", "quote_id", "query_id",
}

// ListSchedule returns the HTML schedule listing.
func (s *Service) ListSchedule(ctx context.Context) (string, error) {
	return s.html(ctx, ccli.ProgramSchedule, "ls", nil)
}

// AddSchedule creates a schedule entry and returns its id.
func (s *Service) AddSchedule(ctx context.Context, fields Fields) (string, error) {
	date, err := NormalizeDate(fields.Get("date"))
	if err != nil {
		return "", err
	}
	args := argsFrom(fields, scheduleFlags)
	for i, ff := range scheduleFlags {
		if ff.field == "date" {
			args[i] = ccli.F(ff.flag, date)
		}
	}
	return s.value(ctx, ccli.ProgramSchedule, "add", args)
}

// RemoveSchedule deletes a schedule entry.
func (s *Service) RemoveSchedule(ctx context.Context, id int64) (bool, error) {
	return s.remove(ctx, ccli.ProgramSchedule, "remove", id)
}
