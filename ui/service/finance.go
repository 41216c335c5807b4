package service

import (
	"context"

	"github.com/casual-erp/casual-web/ccli"
)

// Report returns the HTML finance report.
func (s *Service) Report(ctx context.Context) (string, error) {
	return s.html(ctx, ccli.ProgramFinance, "report", nil)
}

// RemoveReport deletes a finance report entry.
func (s *Service) RemoveReport(ctx context.Context, id int64) (bool, error) {
	return s.remove(ctx, ccli.ProgramFinance, "remove", id)
}
