package httpapi

import (
	"net/http"

	applog "github.com/autosave-dev/autosave/internal/log"
	"github.com/autosave-dev/autosave/internal/model"
	"github.com/autosave-dev/autosave/internal/savings"
	"github.com/autosave-dev/autosave/internal/wire"
)

// handleParse rounds each expense up and reports the totals.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var body []wire.Expense
	if !s.decodeBody(w, r, &body) {
		return
	}
	expenses, err := wire.DecodeExpenses(body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res := savings.RoundUp(expenses, s.engine.Params().RoundUp)
	applog.FromContext(r.Context()).Debug("Expenses parsed",
		applog.FieldOperation, applog.OpParse,
		applog.FieldCount, len(res.Transactions))
	writeJSON(w, http.StatusOK, wire.NewParseResponse(res))
}

// handleValidate partitions transactions into valid and rejected.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var body wire.ValidationRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	wage, txns, err := body.Decode()
	if err != nil {
		writeError(w, r, err)
		return
	}

	res := savings.Validate(wage, txns)
	applog.FromContext(r.Context()).Debug("Transactions validated",
		applog.FieldOperation, applog.OpValidate,
		applog.FieldCount, len(res.Valid),
		applog.FieldInvalid, len(res.Invalid))
	writeJSON(w, http.StatusOK, wire.NewValidationResponse(res.Valid, res.Invalid))
}

// handleFilter applies the q and p period rules.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var body wire.FilterRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	rules, wage, txns, err := body.Decode()
	if err != nil {
		writeError(w, r, err)
		return
	}

	res := savings.Filter(rules, wage, txns)
	applog.FromContext(r.Context()).Debug("Transactions filtered",
		applog.FieldOperation, applog.OpFilter,
		applog.FieldCount, len(res.Valid),
		applog.FieldInvalid, len(res.Invalid))
	writeJSON(w, http.StatusOK, wire.NewValidationResponse(res.Valid, res.Invalid))
}

// handleReturns projects the request under one investment mode.
func (s *Server) handleReturns(mode model.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body wire.ReturnsRequest
		if !s.decodeBody(w, r, &body) {
			return
		}
		req, err := body.Decode()
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp, err := s.engine.Project(mode, req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		applog.FromContext(r.Context()).Debug("Returns projected",
			applog.FieldOperation, applog.OpReturns,
			applog.FieldMode, string(mode),
			applog.FieldWindows, len(resp.SavingsByDates))
		writeJSON(w, http.StatusOK, wire.NewReturnsResponse(resp))
	}
}

// handleHealth is used by container orchestrators.
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
