package sentiment

type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

const labelThreshold = 0.1

// LabelFor maps a score to a label. Scores exactly on the threshold are
// neutral.
func LabelFor(score float64) Label {
	if score > labelThreshold {
		return Positive
	}
	if score < -labelThreshold {
		return Negative
	}
	return Neutral
}
