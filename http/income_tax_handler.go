package http

import (
	"net/http"

	"fin-calc/domain"
	"fin-calc/service"
)

type IncomeTaxHandler struct {
	service *service.IncomeTaxService
}

func NewIncomeTaxHandler(service *service.IncomeTaxService) *IncomeTaxHandler {
	return &IncomeTaxHandler{service: service}
}

func (h *IncomeTaxHandler) CalculateIncomeTax(w http.ResponseWriter, r *http.Request) {
	limitBody(w, r)
	input, err := domain.DecodeIncomeTaxInput(r.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}
