package hermes

import (
	"encoding/json"
	"time"

	"github.com/MikeSquared-Agency/wqi/internal/wqi"
)

// SampleSubmittedEvent is the intake payload on water.sample.submitted. The
// measurement fields sit at the top level next to sample_id and weights.
type SampleSubmittedEvent struct {
	SampleID string `json:"sample_id,omitempty"`
	wqi.ParameterSet
	Weights json.RawMessage `json:"weights,omitempty"`
}

type IndexComputedEvent struct {
	EvaluationID   string             `json:"evaluation_id"`
	SampleID       string             `json:"sample_id,omitempty"`
	Index          float64            `json:"index"`
	Classification wqi.Classification `json:"classification"`
	ComputedAt     time.Time          `json:"computed_at"`
}

type SampleFailedEvent struct {
	SampleID string    `json:"sample_id,omitempty"`
	Error    string    `json:"error"`
	Reason   string    `json:"reason"`
	FailedAt time.Time `json:"failed_at"`
}

type WeightsUpdatedEvent struct {
	Weights   map[string]float64 `json:"weights"`
	UpdatedAt time.Time          `json:"updated_at"`
}
