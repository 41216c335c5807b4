package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/casual-erp/casual-web/ccli"
)

var contractFlags = []flagField{
	{"-s", "sender_id"},
	{"-r", "recipient_id"},
	{"-c", "contract_type"},
	{"-i", "invoice_period_months"},
	{"--monthly-rate", "monthly_rate"},
	{"--contract-url", "contract_url"},
}

// ContractFormFields lists the add-contract form fields in display order.
var ContractFormFields = []string{
	"sender_id", "recipient_id", "contract_type", "invoice_period_months", "monthly_rate", "contract_url",
}

// contractDates are the date fields update-contract accepts, by prefix.
var contractDates = []string{"start", "end", "cancel", "send"}

// ListContracts returns the HTML contract listing.
func (s *Service) ListContracts(ctx context.Context) (string, error) {
	return s.html(ctx, ccli.ProgramAccount, "list-contracts", nil)
}

// GetContract returns one contract.
func (s *Service) GetContract(ctx context.Context, id int64) (Record, error) {
	return s.record(ctx, ccli.ProgramAccount, "get-contract", id)
}

// AddContract creates a contract and returns its id.
func (s *Service) AddContract(ctx context.Context, fields Fields) (string, error) {
	return s.value(ctx, ccli.ProgramAccount, "add-contract", argsFrom(fields, contractFlags))
}

// UpdateContract updates a contract and returns its id. Date fields are
// normalized with NormalizeDate first.
func (s *Service) UpdateContract(ctx context.Context, id int64, fields Fields) (string, error) {
	dates := make(map[string]string, len(contractDates))
	for _, prefix := range contractDates {
		name := prefix + "_date"
		d, err := NormalizeDate(fields.Get(name))
		if err != nil {
			return "", fmt.Errorf("service: %s: %w", name, err)
		}
		dates[name] = d
	}

	args := ccli.Args{
		ccli.ID(id),
		ccli.F("-s", fields.Get("sender_id")),
		ccli.F("-r", fields.Get("recipient_id")),
		ccli.F("-c", fields.Get("contract_type")),
		ccli.F("-i", fields.Get("invoice_period_months")),
		ccli.F("--start-date", dates["start_date"]),
		ccli.F("--end-date", dates["end_date"]),
		ccli.F("--auto-renew", fields.Get("auto_renew")),
		ccli.F("--cancel-date", dates["cancel_date"]),
		ccli.F("--send-date", dates["send_date"]),
		ccli.F("--monthly-rate", fields.Get("monthly_rate")),
		ccli.F("--contract-url", fields.Get("contract_url")),
	}
	return s.value(ctx, ccli.ProgramAccount, "update-contract", args)
}

// NormalizeDate turns a raw datetime-local form value into the
// "YYYY-MM-DDTHH:MM:SS" shape the CLI parses. Empty and "null" values yield ""
// so the flag is dropped.
func NormalizeDate(raw string) (string, error) {
	if raw == "" || raw == "null" {
		return "", nil
	}
	date, err := url.PathUnescape(raw)
	if err != nil {
		return "", err
	}
	switch strings.Count(date, ":") {
	case 0:
		return date + ":00:00", nil
	case 1:
		return date + ":00", nil
	default:
		return date, nil
	}
}
