package http

import (
	"net/http"

	"fin-calc/domain"
	"fin-calc/service"
)

type MortgageHandler struct {
	service *service.MortgageService
}

func NewMortgageHandler(service *service.MortgageService) *MortgageHandler {
	return &MortgageHandler{service: service}
}

func (h *MortgageHandler) CalculateMortgage(w http.ResponseWriter, r *http.Request) {
	limitBody(w, r)
	input, err := domain.DecodeMortgageInput(r.Body)
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
