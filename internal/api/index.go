package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MikeSquared-Agency/wqi/internal/broker"
)

const (
	maxSampleBytes = 64 << 10
	maxBatchBytes  = 8 << 20
)

// requiredFields are the measurements every sample must carry. Altitude and
// temperature fall back to defaults when omitted.
var requiredFields = []string{
	"dissolved_oxygen",
	"fecal_coliforms",
	"ph",
	"bod",
	"total_nitrogen",
	"total_phosphorus",
	"turbidity",
	"total_solids",
}

type IndexHandler struct {
	broker   *broker.Broker
	batchMax int
}

func NewIndexHandler(b *broker.Broker, batchMax int) *IndexHandler {
	return &IndexHandler{broker: b, batchMax: batchMax}
}

// Compute evaluates a single sample.
// POST /api/v1/index
// POST /api/v1/wqi
func (h *IndexHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSampleBytes)).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	sample, err := decodeSample(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ev, err := h.broker.Evaluate(r.Context(), sample)
	if err != nil {
		writeError(w, evaluationStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

type batchRequest struct {
	Samples []json.RawMessage `json:"samples"`
}

type batchResponse struct {
	Count     int                `json:"count"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
	Items     []broker.BatchItem `json:"items"`
}

// Batch evaluates several samples. Per-sample failures are reported in the
// matching item and do not fail the request.
// POST /api/v1/index/batch
func (h *IndexHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBatchBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Samples) == 0 {
		writeError(w, http.StatusBadRequest, "samples must not be empty")
		return
	}
	if len(req.Samples) > h.batchMax {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("batch of %d exceeds limit of %d samples", len(req.Samples), h.batchMax))
		return
	}

	samples := make([]broker.Sample, len(req.Samples))
	for i, raw := range req.Samples {
		s, err := decodeSample(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("samples[%d]: %v", i, err))
			return
		}
		samples[i] = s
	}

	items := h.broker.EvaluateBatch(r.Context(), samples)
	resp := batchResponse{Count: len(items), Items: items}
	for _, item := range items {
		if item.Error != "" {
			resp.Failed++
		} else {
			resp.Succeeded++
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeSample(raw json.RawMessage) (broker.Sample, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return broker.Sample{}, errors.New("sample must be a JSON object")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return broker.Sample{}, errors.New("sample must be a JSON object")
	}
	for _, name := range requiredFields {
		v, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return broker.Sample{}, fmt.Errorf("%s is required", name)
		}
	}

	var s broker.Sample
	if err := json.Unmarshal(raw, &s); err != nil {
		return broker.Sample{}, fmt.Errorf("invalid sample: %v", err)
	}
	return s, nil
}

func evaluationStatus(err error) int {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, broker.ErrNonFinite):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
