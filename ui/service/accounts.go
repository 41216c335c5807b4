package service

import (
	"context"
	"fmt"

	"github.com/casual-erp/casual-web/ccli"
)

var accountFlags = []flagField{
	{"-n", "name"},
	{"-p", "phone"},
	{"-c", "company_id"},
	{"-a", "address_id"},
	{"--company-name", "company_name"},
	{"--country", "country"},
	{"--city", "city"},
	{"-s", "street"},
	{"--number", "number"},
	{"-u", "unit"},
	{"--postalcode", "postalcode"},
	{"--privacy-permissions", "privacy_permissions"},
}

// AccountFormFields lists the add-account form fields in display order.
var AccountFormFields = []string{
	"name", "phone", "email", "company_id", "address_id", "company_name",
	"country", "city", "street", "number", "unit", "postalcode", "privacy_permissions",
}

// ListAccounts returns the HTML account listing.
func (s *Service) ListAccounts(ctx context.Context) (string, error) {
	return s.html(ctx, ccli.ProgramAccount, "ls", nil)
}

// ListCompanyAccounts returns the HTML listing of a company's accounts.
func (s *Service) ListCompanyAccounts(ctx context.Context, companyID int64) (string, error) {
	return s.html(ctx, ccli.ProgramAccount, "ls", ccli.Args{ccli.FInt("-c", companyID)})
}

// GetAccount returns one account.
func (s *Service) GetAccount(ctx context.Context, id int64) (Record, error) {
	return s.record(ctx, ccli.ProgramAccount, "get", id)
}

// AccountOptions returns account choices labelled by name.
func (s *Service) AccountOptions(ctx context.Context) ([]Option, error) {
	records, err := s.records(ctx, ccli.ProgramAccount, "ls", nil)
	if err != nil {
		return nil, err
	}
	return optionsFrom(records, func(r Record) string { return r.String("name") }), nil
}

// AddressOptions returns address choices labelled "city, street numberunit".
func (s *Service) AddressOptions(ctx context.Context) ([]Option, error) {
	records, err := s.records(ctx, ccli.ProgramAccount, "list-addresses", nil)
	if err != nil {
		return nil, err
	}
	return optionsFrom(records, addressLabel), nil
}

func addressLabel(r Record) string {
	return fmt.Sprintf("%s, %s %s%s", r.String("city"), r.String("street"), r.String("number"), r.String("unit"))
}

// AddAccount creates an account and returns its id.
func (s *Service) AddAccount(ctx context.Context, fields Fields) (string, error) {
	return s.value(ctx, ccli.ProgramAccount, "add", argsFrom(fields, accountFlags))
}

// UpdateAccount updates an account and returns its id.
func (s *Service) UpdateAccount(ctx context.Context, id int64, fields Fields) (string, error) {
	return s.value(ctx, ccli.ProgramAccount, "update", argsFrom(fields, accountFlags, ccli.ID(id)))
}

// RemoveAccount deletes an account.
func (s *Service) RemoveAccount(ctx context.Context, id int64) (bool, error) {
	return s.remove(ctx, ccli.ProgramAccount, "remove", id)
}
