package intent

// Label is the coarse action category a command expresses. The set is closed.
type Label string

const (
	Create   Label = "CREATE"
	Read     Label = "READ" // read / list
	Update   Label = "UPDATE"
	Delete   Label = "DELETE"
	Approve  Label = "APPROVE"
	Reject   Label = "REJECT"
	Report   Label = "REPORT"
	Navigate Label = "NAVIGATE"
	Help     Label = "HELP"
	Unknown  Label = "UNKNOWN"
)

// UnknownConfidence is the confidence reported when nothing matched.
const UnknownConfidence = 0.1

// Labels lists every label in table order, UNKNOWN last.
func Labels() []Label {
	return []Label{Create, Read, Update, Delete, Approve, Reject, Report, Navigate, Help, Unknown}
}

// ParseLabel resolves a label name. "LIST" is accepted as an alias of READ.
func ParseLabel(s string) (Label, bool) {
	if s == "LIST" {
		return Read, true
	}
	for _, l := range Labels() {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// Alternative is a non-primary intent with its score.
type Alternative struct {
	Intent     Label   `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Classification is the outcome of intent recognition.
type Classification struct {
	Primary      Label         `json:"primary"`
	Confidence   float64       `json:"confidence"`
	Alternatives []Alternative `json:"alternatives"`
}

// UnknownClassification is the fallback when no rule scores.
func UnknownClassification() Classification {
	return Classification{
		Primary:      Unknown,
		Confidence:   UnknownConfidence,
		Alternatives: []Alternative{},
	}
}

// Clamp bounds v to [0,1].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
