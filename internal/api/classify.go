package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/MikeSquared-Agency/wqi/internal/wqi"
)

type classifyResponse struct {
	Index          float64            `json:"index"`
	Classification wqi.Classification `json:"classification"`
	Label          string             `json:"label_pt"`
}

// Classify maps an index value to its quality class.
// GET /api/v1/classify?index=<float>
func Classify(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("index")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "index query parameter required")
		return
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		writeError(w, http.StatusBadRequest, "index must be a finite number")
		return
	}

	c := wqi.Classify(v)
	writeJSON(w, http.StatusOK, classifyResponse{Index: v, Classification: c, Label: c.Portuguese()})
}
