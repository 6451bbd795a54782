package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"commute-agent/domain"
	"commute-agent/logger"
	"commute-agent/metrics"
	"commute-agent/service"
)

const (
	maxBodyBytes       = 64 << 10
	evaluationIDHeader = "X-Evaluation-ID"
)

// Evaluator is the engine behind POST /evaluate.
type Evaluator interface {
	Recommend(in domain.InputRecord) (domain.RecommendationResult, error)
}

type EvaluateHandler struct {
	engine Evaluator
	prices service.PriceSource
	logger logger.Logger
}

// NewEvaluateHandler builds the handler. prices may be nil, in which case a
// request without fuelPricePerLiter uses the engine default.
func NewEvaluateHandler(engine Evaluator, prices service.PriceSource, log logger.Logger) *EvaluateHandler {
	return &EvaluateHandler{engine: engine, prices: prices, logger: log}
}

// readBody reads a size-limited body and checks it against schema. It writes
// the error response itself and returns ok == false on failure.
func readBody(w http.ResponseWriter, r *http.Request, log logger.Logger, schema *requestSchema) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, log, http.StatusBadRequest, "invalid request body", nil)
		return nil, false
	}
	if fields := schema.check(body); fields != nil {
		metrics.InputRejections.Inc()
		writeError(w, log, http.StatusBadRequest, "invalid request body", fields)
		return nil, false
	}
	return body, true
}

// decodeBody decodes a schema-checked body into v. A value the schema allows
// but the Go type cannot hold, such as 5.0 for an int, is reported against its
// field.
func decodeBody(w http.ResponseWriter, log logger.Logger, body []byte, v interface{}) bool {
	err := json.NewDecoder(bytes.NewReader(body)).Decode(v)
	if err == nil {
		return true
	}

	log.WithError(err).Debug("decoding request body", nil)
	metrics.InputRejections.Inc()

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		writeError(w, log, http.StatusBadRequest, "invalid request body", map[string]string{
			typeErr.Field: fmt.Sprintf("%s 형식이 아닙니다", typeErr.Type),
		})
		return false
	}
	writeError(w, log, http.StatusBadRequest, "invalid request body", map[string]string{
		"body": "요청 본문을 해석할 수 없습니다",
	})
	return false
}

func (h *EvaluateHandler) writeEngineError(w http.ResponseWriter, log logger.Logger, err error) {
	var inputErr *service.InputError
	if errors.As(err, &inputErr) {
		metrics.InputRejections.Inc()
		log.Info("evaluation input rejected", map[string]interface{}{"fields": inputErr.Fields})
		writeError(w, log, http.StatusBadRequest, service.ErrInvalidInput.Error(), inputErr.Fields)
		return
	}
	log.WithError(err).Error("evaluation failed", nil)
	writeError(w, log, http.StatusInternalServerError, "internal server error", nil)
}

func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	log := h.logger.WithFields(map[string]interface{}{"evaluationId": id})
	w.Header().Set(evaluationIDHeader, id)

	body, ok := readBody(w, r, log, evaluateRequestSchema)
	if !ok {
		return
	}

	var in domain.InputRecord
	if !decodeBody(w, log, body, &in) {
		return
	}

	if err := service.ValidateInput(in); err != nil {
		h.writeEngineError(w, log, err)
		return
	}

	if in.FuelPricePerLiter == nil && h.prices != nil {
		quote := h.prices.Get(r.Context())
		price := quote.PricePerLiter
		in.FuelPricePerLiter = &price
		log.Debug("fuel price supplied", map[string]interface{}{"price": price, "source": quote.Source})
	}

	start := time.Now()
	result, err := h.engine.Recommend(in)
	if err != nil {
		h.writeEngineError(w, log, err)
		return
	}
	metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
	metrics.EvaluationsTotal.WithLabelValues(string(result.Verdict)).Inc()

	log.Info("evaluation completed", map[string]interface{}{
		"verdict": string(result.Verdict),
		"score":   result.Score,
	})
	writeJSON(w, log, http.StatusOK, result)
}
