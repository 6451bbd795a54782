package http

import (
	"errors"
	"net/http"

	"commute-agent/domain"
	"commute-agent/logger"
	"commute-agent/service"
)

type LoanHandler struct {
	service *service.LoanService
	logger  logger.Logger
}

func NewLoanHandler(service *service.LoanService, log logger.Logger) *LoanHandler {
	return &LoanHandler{service: service, logger: log}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r, h.logger, loanRequestSchema)
	if !ok {
		return
	}

	var input domain.LoanInput
	if !decodeBody(w, h.logger, body, &input) {
		return
	}

	result, err := h.service.CalculateLoan(input)
	if err != nil {
		var inputErr *service.InputError
		if errors.As(err, &inputErr) {
			writeError(w, h.logger, http.StatusBadRequest, service.ErrInvalidInput.Error(), inputErr.Fields)
			return
		}
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
