package sentiment

// Mode says whether real scoring is available for an analysis.
type Mode string

const (
	ModeNormal   Mode = "normal"
	ModeFallback Mode = "fallback"
)

// ResolveMode is called once at startup with the backend that was built
// from configuration. A missing backend means every analysis scores 0.
func ResolveMode(backend BatchScorer) Mode {
	if backend == nil {
		return ModeFallback
	}
	return ModeNormal
}
