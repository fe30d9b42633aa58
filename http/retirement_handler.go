package http

import (
	"net/http"

	"fin-calc/domain"
	"fin-calc/service"
)

type RetirementHandler struct {
	service *service.RetirementService
}

func NewRetirementHandler(service *service.RetirementService) *RetirementHandler {
	return &RetirementHandler{service: service}
}

func (h *RetirementHandler) CalculateRetirement(w http.ResponseWriter, r *http.Request) {
	limitBody(w, r)
	input, err := domain.DecodeRetirementInput(r.Body)
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
