package frontend

import (
	"html/template"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/casual-erp/casual-web/ui/service"
)

func (rt *router) handleCompany(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing company id")
	}
	company, err := rt.svc.GetCompany(r.Context(), id)
	if err != nil {
		return err
	}

	var (
		accountIDs, addrIDs []service.Option
		accounts            string
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { accountIDs, err = rt.svc.AccountOptions(ctx); return })
	g.Go(func() (err error) { addrIDs, err = rt.svc.AddressOptions(ctx); return })
	g.Go(func() (err error) { accounts, err = rt.svc.ListCompanyAccounts(ctx, id); return })
	if err := g.Wait(); err != nil {
		return err
	}

	name := company.String("name")
	form, err := rt.updateForm("update-company", "/companies/"+strconv.FormatInt(id, 10), company,
		service.Options{"account_id": accountIDs, "address_id": addrIDs}, true)
	if err != nil {
		return err
	}
	var logo template.HTML
	if src := company.String("logo"); src != "" {
		if logo, err = rt.renderer.renderFragment("logo", src); err != nil {
			return err
		}
	}
	accountList, err := rt.overview("accounts", orElse(accounts, "No accounts found"), 2, "account-view")
	if err != nil {
		return err
	}
	addAccount, err := rt.createForm("add-account", "/accounts", service.AccountFormFields,
		service.Options{"address_id": addrIDs},
		map[string]service.Option{"company_id": presetOption(id, name)}, true)
	if err != nil {
		return err
	}
	return rt.page(w, r, title(name, 1), form, logo, "<br/>", accountList, addAccount)
}

func (rt *router) handleAddCompany(w http.ResponseWriter, r *http.Request, _ int64) error {
	fields, err := readForm(r, "name")
	if err != nil {
		return err
	}
	id, err := rt.svc.AddCompany(r.Context(), fields)
	if err != nil {
		return err
	}
	return rt.created(w, "companies", id, "Go to new company")
}

func (rt *router) handleUpdateCompany(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing id")
	}
	fields, err := readForm(r)
	if err != nil {
		return err
	}
	updated, err := rt.svc.UpdateCompany(r.Context(), id, fields)
	if err != nil {
		return err
	}
	return rt.created(w, "companies", updated, "Go to updated company")
}

func (rt *router) handleRemoveCompany(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing id")
	}
	ok, err := rt.svc.RemoveCompany(r.Context(), id)
	if err != nil {
		return err
	}
	return removed(w, ok)
}
