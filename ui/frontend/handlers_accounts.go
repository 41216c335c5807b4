package frontend

import (
	"errors"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/casual-erp/casual-web/ui/service"
)

func (rt *router) handleAccounts(w http.ResponseWriter, r *http.Request, id int64) error {
	if id > 0 {
		account, err := rt.svc.GetAccount(r.Context(), id)
		switch {
		case err == nil:
			return rt.accountDetail(w, r, account)
		case errors.Is(err, service.ErrNotFound):
			rt.logError(r, "account not found", err)
		default:
			return err
		}
	}

	var (
		accounts, companies              string
		accountIDs, companyIDs, addrIDs []service.Option
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { accounts, err = rt.svc.ListAccounts(ctx); return })
	g.Go(func() (err error) { companies, err = rt.svc.ListCompanies(ctx); return })
	g.Go(func() (err error) { accountIDs, err = rt.svc.AccountOptions(ctx); return })
	g.Go(func() (err error) { companyIDs, err = rt.svc.CompanyOptions(ctx); return })
	g.Go(func() (err error) { addrIDs, err = rt.svc.AddressOptions(ctx); return })
	if err := g.Wait(); err != nil {
		return err
	}

	accountList, err := rt.overview("accounts", orElse(accounts, "No accounts found"), 1, "main")
	if err != nil {
		return err
	}
	addAccount, err := rt.createForm("add-account", "/accounts", service.AccountFormFields,
		service.Options{"company_id": companyIDs, "address_id": addrIDs}, nil, true)
	if err != nil {
		return err
	}
	companyList, err := rt.overview("companies", orElse(companies, "No companies found"), 2, "main")
	if err != nil {
		return err
	}
	addCompany, err := rt.createForm("add-company", "/companies", service.CompanyFormFields,
		service.Options{"account_id": accountIDs, "address_id": addrIDs}, nil, true)
	if err != nil {
		return err
	}
	return rt.page(w, r, accountList, addAccount, companyList, addCompany)
}

func (rt *router) accountDetail(w http.ResponseWriter, r *http.Request, account service.Record) error {
	var companyIDs, addrIDs []service.Option
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { companyIDs, err = rt.svc.CompanyOptions(ctx); return })
	g.Go(func() (err error) { addrIDs, err = rt.svc.AddressOptions(ctx); return })
	if err := g.Wait(); err != nil {
		return err
	}

	form, err := rt.updateForm("update-account", "/accounts/"+strconv.FormatInt(account.ID(), 10), account,
		service.Options{"company_id": companyIDs, "address_id": addrIDs}, true)
	if err != nil {
		return err
	}
	return rt.page(w, r, title(account.String("name"), 1), form)
}

func (rt *router) handleAddAccount(w http.ResponseWriter, r *http.Request, _ int64) error {
	fields, err := readForm(r, "name")
	if err != nil {
		return err
	}
	id, err := rt.svc.AddAccount(r.Context(), fields)
	if err != nil {
		return err
	}
	return rt.created(w, "accounts", id, "Go to new account")
}

func (rt *router) handleUpdateAccount(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing id")
	}
	fields, err := readForm(r)
	if err != nil {
		return err
	}
	updated, err := rt.svc.UpdateAccount(r.Context(), id, fields)
	if err != nil {
		return err
	}
	return rt.created(w, "accounts", updated, "Go to updated account")
}

func (rt *router) handleRemoveAccount(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing id")
	}
	ok, err := rt.svc.RemoveAccount(r.Context(), id)
	if err != nil {
		return err
	}
	return removed(w, ok)
}

// presetOption is the single fixed choice of a create form field.
func presetOption(id int64, label string) service.Option {
	v := strconv.FormatInt(id, 10)
	return service.Option{Value: v, Label: orElse(label, v)}
}
