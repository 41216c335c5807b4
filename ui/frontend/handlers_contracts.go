package frontend

import (
	"errors"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/casual-erp/casual-web/ui/service"
)

func (rt *router) handleContracts(w http.ResponseWriter, r *http.Request, id int64) error {
	if id > 0 {
		contract, err := rt.svc.GetContract(r.Context(), id)
		switch {
		case err == nil:
			return rt.contractDetail(w, r, id, contract)
		case errors.Is(err, service.ErrNotFound):
			rt.logError(r, "contract not found", err)
		default:
			return err
		}
	}

	var (
		contracts  string
		accountIDs []service.Option
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { contracts, err = rt.svc.ListContracts(ctx); return })
	g.Go(func() (err error) { accountIDs, err = rt.svc.AccountOptions(ctx); return })
	if err := g.Wait(); err != nil {
		return err
	}

	list, err := rt.overview("contracts", orElse(contracts, "No contracts found"), 1, "main")
	if err != nil {
		return err
	}
	form, err := rt.createForm("add-contract", "/contracts", service.ContractFormFields,
		service.Options{"sender_id": accountIDs, "recipient_id": accountIDs}, nil, false)
	if err != nil {
		return err
	}
	return rt.page(w, r, list, form)
}

func (rt *router) contractDetail(w http.ResponseWriter, r *http.Request, id int64, contract service.Record) error {
	recipientID := contract.Get("recipient_id").Int()
	if recipientID == 0 {
		return notFound("Client not found id:" + strconv.FormatInt(recipientID, 10))
	}
	client, err := rt.svc.GetAccount(r.Context(), recipientID)
	if errors.Is(err, service.ErrNotFound) {
		return notFound("Client not found")
	}
	if err != nil {
		return err
	}

	recipient := []service.Option{presetOption(recipientID, client.String("name"))}
	form, err := rt.updateForm("update-contract", "/contracts/"+strconv.FormatInt(id, 10), contract,
		service.Options{"recipient_id": recipient}, true)
	if err != nil {
		return err
	}
	heading := contract.String("contract_type") + " contract"
	return rt.page(w, r, title(heading, 1), form)
}

func (rt *router) handleAddContract(w http.ResponseWriter, r *http.Request, _ int64) error {
	fields, err := readForm(r, "sender_id", "recipient_id")
	if err != nil {
		return err
	}
	id, err := rt.svc.AddContract(r.Context(), fields)
	if err != nil {
		return err
	}
	return rt.created(w, "contracts", id, "Go to new contract")
}

func (rt *router) handleUpdateContract(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing id")
	}
	fields, err := readForm(r)
	if err != nil {
		return err
	}
	updated, err := rt.svc.UpdateContract(r.Context(), id, fields)
	if err != nil {
		return err
	}
	return rt.created(w, "contracts", updated, "Go to updated contract")
}
