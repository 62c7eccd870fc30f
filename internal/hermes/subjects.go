package hermes

const (
	SubjectSampleSubmitted = "water.sample.submitted"
	SubjectSampleFailed    = "water.sample.failed"
	SubjectWeightsUpdated  = "water.weights.updated"

	StreamName   = "WQI_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectIndexComputed(evaluationID string) string {
	return "water.index." + evaluationID + ".computed"
}

// StreamSubjects lists the subjects captured by the JetStream stream.
func StreamSubjects() []string { return []string{"water.>"} }
