package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MikeSquared-Agency/wqi/internal/broker"
	"github.com/MikeSquared-Agency/wqi/internal/wqi"
)

type WeightsHandler struct {
	broker *broker.Broker
}

func NewWeightsHandler(b *broker.Broker) *WeightsHandler {
	return &WeightsHandler{broker: b}
}

type weightsResponse struct {
	Weights map[string]float64 `json:"weights"`
	Order   []wqi.Key          `json:"order"`
	Sum     float64            `json:"sum"`
}

func newWeightsResponse(ws wqi.WeightSet) weightsResponse {
	return weightsResponse{Weights: ws.Map(), Order: wqi.WeightKeys, Sum: ws.Sum()}
}

// Get returns the service default weights.
// GET /api/v1/weights
func (h *WeightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newWeightsResponse(h.broker.Weights()))
}

// Update replaces the service default weights. The body is resolved over the
// canonical weights, so an empty body or null restores them.
// PUT /api/v1/admin/weights
func (h *WeightsHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSampleBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	if len(body) > 0 && !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ws, err := wqi.ParseWeights(body, wqi.DefaultWeights())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.broker.SetWeights(ws); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newWeightsResponse(ws))
}
