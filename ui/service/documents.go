package service

import (
	"context"

	"github.com/casual-erp/casual-web/ccli"
)

// GetQuote returns one quote.
func (s *Service) GetQuote(ctx context.Context, id int64) (Record, error) {
	return s.record(ctx, ccli.ProgramProject, "get-quote", id)
}

// GetInvoice returns one invoice.
func (s *Service) GetInvoice(ctx context.Context, id int64) (Record, error) {
	return s.record(ctx, ccli.ProgramProject, "get-invoice", id)
}

// RemoveQuote deletes a quote.
func (s *Service) RemoveQuote(ctx context.Context, id int64) (bool, error) {
	return s.remove(ctx, ccli.ProgramProject, "remove-quote", id)
}

// RemoveInvoice deletes an invoice.
func (s *Service) RemoveInvoice(ctx context.Context, id int64) (bool, error) {
	return s.remove(ctx, ccli.ProgramProject, "remove-invoice", id)
}

// QuoteProjectID returns the project a quote belongs to, or 0.
func (s *Service) QuoteProjectID(ctx context.Context, quoteID int64) int64 {
	quote, err := s.GetQuote(ctx, quoteID)
	if err != nil {
		return 0
	}
	return quote.Get("project_id").Int()
}

// MakeQuote starts quote generation for a project without waiting for it.
// delivered, when non-nil, receives the PDF path the CLI prints.
func (s *Service) MakeQuote(ctx context.Context, projectID int64, delivered func(path string)) {
	s.generate(ctx, "make-quote", ccli.Args{ccli.FInt("-p", projectID)}, delivered)
}

// MakeInvoice starts invoice generation for a quote without waiting for it.
func (s *Service) MakeInvoice(ctx context.Context, quoteID int64, delivered func(path string)) {
	s.generate(ctx, "make-invoice", ccli.Args{ccli.FInt("-q", quoteID)}, delivered)
}
