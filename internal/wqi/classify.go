package wqi

// Classification is the categorical quality label for an index value.
type Classification string

const (
	VeryBad   Classification = "very bad"
	Poor      Classification = "poor"
	Fair      Classification = "fair"
	Good      Classification = "good"
	Excellent Classification = "excellent"
)

// classThresholds are inclusive upper bounds, ascending.
var classThresholds = []struct {
	upper float64
	class Classification
}{
	{19, VeryBad},
	{36, Poor},
	{51, Fair},
	{79, Good},
}

// Classify maps an index value to its quality label.
func Classify(index float64) Classification {
	for _, t := range classThresholds {
		if index <= t.upper {
			return t.class
		}
	}
	return Excellent
}

// Classifications lists every label from worst to best.
func Classifications() []Classification {
	return []Classification{VeryBad, Poor, Fair, Good, Excellent}
}

// Portuguese returns the label used by the CETESB methodology.
func (c Classification) Portuguese() string {
	switch c {
	case VeryBad:
		return "Péssima"
	case Poor:
		return "Ruim"
	case Fair:
		return "Regular"
	case Good:
		return "Boa"
	case Excellent:
		return "Ótima"
	default:
		return ""
	}
}

// Valid reports whether c is one of the five labels.
func (c Classification) Valid() bool {
	return c.Portuguese() != ""
}
