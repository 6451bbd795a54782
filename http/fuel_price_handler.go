package http

import (
	"net/http"

	"commute-agent/logger"
	"commute-agent/service"
)

type FuelPriceHandler struct {
	prices service.PriceSource
	logger logger.Logger
}

func NewFuelPriceHandler(prices service.PriceSource, log logger.Logger) *FuelPriceHandler {
	return &FuelPriceHandler{prices: prices, logger: log}
}

func (h *FuelPriceHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.prices.Get(r.Context()))
}
