package handler

import (
	"net/http"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/exchange"
	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/services"
)

func (h *Handler) getCoverage(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.badRequest(w, r, "missing date parameter")
		return
	}

	report, err := services.CoverageReport(r.Context(), h.store, h.logger, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, report)
}

func (h *Handler) getDeficit(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.badRequest(w, r, "missing date parameter")
		return
	}

	report, err := services.CoverageReport(r.Context(), h.store, h.logger, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, report.Deficit)
}

func (h *Handler) getContexts(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.badRequest(w, r, "missing date parameter")
		return
	}
	if _, err := calendar.ParseDate(date); err != nil {
		h.badRequest(w, r, err.Error())
		return
	}

	current, err := h.store.LoadState(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cal := calendar.New(current.CalendarOverrides)
	contexts := exchange.BuildContexts(date, current.People, current.Plan,
		current.Incidents, current.Exchanges, cal, h.logger)

	h.successResponse(w, r, contexts)
}

func (h *Handler) getResponsibility(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	personID := q.Get("person")
	date := q.Get("date")
	shift := model.Shift(q.Get("shift"))

	if personID == "" || date == "" {
		h.badRequest(w, r, "missing person or date parameter")
		return
	}
	if !shift.IsValid() {
		h.badRequest(w, r, "shift must be DAY or NIGHT")
		return
	}

	resolution, err := services.ResolveResponsibility(r.Context(), h.store, h.logger, personID, date, shift)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, resolution)
}

func (h *Handler) getPeople(w http.ResponseWriter, r *http.Request) {
	current, err := h.store.LoadState(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, current.People)
}

func (h *Handler) getAuditLog(w http.ResponseWriter, r *http.Request) {
	current, err := h.store.LoadState(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, current.AuditLog)
}
