package order

// Config holds the thresholds for reading-order estimation.
// A Config is immutable once handed to an Estimator; the estimator never
// modifies it, so one Config may back concurrent estimators.
type Config struct {
	// MinGutterSize is the minimum width (in page pixel units) of an empty
	// band between panels for it to count as a gutter.
	// Default: 10
	MinGutterSize float64

	// MaxDepth caps the recursion depth of the division tree. Exhausting
	// the cap merges the remaining panels into a single leaf, so it is a
	// hard bound on output shape, not a performance knob.
	// Default: 10
	MaxDepth int

	// FourKomaWidthRatio is the minimum mean panel width, as a fraction of
	// page width, for a four-panel page to qualify as a 4-koma strip.
	// Default: 0.8
	FourKomaWidthRatio float64

	// FourKomaGapTolerance is the maximum deviation of each vertical
	// center-to-center gap from the mean gap, as a fraction of the mean,
	// for a 4-koma layout.
	// Default: 0.3
	FourKomaGapTolerance float64
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		MinGutterSize:        10.0,
		MaxDepth:             10,
		FourKomaWidthRatio:   0.8,
		FourKomaGapTolerance: 0.3,
	}
}
