package service

import (
	"context"

	"github.com/casual-erp/casual-web/ccli"
)

var companyFlags = []flagField{
	{"-n", "name"},
	{"-l", "logo"},
	{"-c", "commerce_number"},
	{"-v", "vat_number"},
	{"-i", "iban"},
	{"-p", "phone"},
	{"-e", "email"},
	{"-a", "account_id"},
	{"--address-id", "address_id"},
	{"--country", "country"},
	{"--city", "city"},
	{"-s", "street"},
	{"--number", "number"},
	{"--unit", "unit"},
	{"--postalcode", "postalcode"},
}

// update-company takes no inline address.
var companyUpdateFlags = companyFlags[:9]

// CompanyFormFields lists the add-company form fields in display order.
var CompanyFormFields = []string{
	"name", "logo", "commerce_number", "vat_number", "iban", "phone", "email",
	"account_id", "address_id", "country", "city", "street", "number", "unit", "postalcode",
}

// ListCompanies returns the HTML company listing.
func (s *Service) ListCompanies(ctx context.Context) (string, error) {
	return s.html(ctx, ccli.ProgramAccount, "list-companies", nil)
}

// GetCompany returns one company.
func (s *Service) GetCompany(ctx context.Context, id int64) (Record, error) {
	return s.record(ctx, ccli.ProgramAccount, "get-company", id)
}

// CompanyOptions returns company choices labelled by name.
func (s *Service) CompanyOptions(ctx context.Context) ([]Option, error) {
	records, err := s.records(ctx, ccli.ProgramAccount, "list-companies", nil)
	if err != nil {
		return nil, err
	}
	return optionsFrom(records, func(r Record) string { return r.String("name") }), nil
}

// AddCompany creates a company and returns its id.
func (s *Service) AddCompany(ctx context.Context, fields Fields) (string, error) {
	return s.value(ctx, ccli.ProgramAccount, "add-company", argsFrom(fields, companyFlags))
}

// UpdateCompany updates a company and returns its id.
func (s *Service) UpdateCompany(ctx context.Context, id int64, fields Fields) (string, error) {
	return s.value(ctx, ccli.ProgramAccount, "update-company", argsFrom(fields, companyUpdateFlags, ccli.ID(id)))
}

// RemoveCompany deletes a company.
func (s *Service) RemoveCompany(ctx context.Context, id int64) (bool, error) {
	return s.remove(ctx, ccli.ProgramAccount, "remove-company", id)
}
