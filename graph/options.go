package graph

// DefaultWheelSeparation is the wheel-to-wheel distance, in meters, of the
// differential-drive base the defaults are tuned for.
const DefaultWheelSeparation = 0.23

// DefaultMergeThreshold is the default merge radius: half the wheel
// separation, so two observations closer than half a robot width apart are
// treated as the same physical node.
const DefaultMergeThreshold = DefaultWheelSeparation / 2

// Exponential smoothing blend applied to a merged node's position when
// smoothing is enabled: pos = smoothKeep*old + smoothBlend*new.
const (
	smoothKeep  = 0.3
	smoothBlend = 0.7
)

// Option configures a Graph before creation via functional arguments.
// An invalid Option (e.g. non-positive threshold) is recorded internally
// and surfaced as a sentinel error by New.
type Option func(*Options)

// Options holds the tunable parameters of a Graph.
//
// The merge threshold and smoothing toggle are injected by the caller
// (typically from the robot's runtime parameter store, which is outside
// this library); the Graph only reads them.
type Options struct {
	// MergeThreshold is the radius within which a new observation merges
	// into an existing node. Compared as squared Euclidean distance.
	MergeThreshold float64

	// SmoothPositions enables the exponential position blend on merge.
	SmoothPositions bool

	// Locator is the nearest-node backend. Nil selects the built-in
	// linear scan (exact lowest-id tie-breaking).
	Locator Locator

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the stock configuration:
// DefaultMergeThreshold, smoothing off, linear-scan locator.
func DefaultOptions() Options {
	return Options{
		MergeThreshold:  DefaultMergeThreshold,
		SmoothPositions: false,
		Locator:         nil,
		err:             nil,
	}
}

// WithMergeThreshold sets the merge radius.
// Non-positive values are invalid and cause New to return ErrBadThreshold.
func WithMergeThreshold(d float64) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = ErrBadThreshold
			return
		}
		o.MergeThreshold = d
	}
}

// WithPositionSmoothing enables the 0.3/0.7 exponential blend of a merged
// node's coordinates toward each new observation. Off by default: the first
// observation of a location then pins its coordinates for good.
func WithPositionSmoothing() Option {
	return func(o *Options) { o.SmoothPositions = true }
}

// WithLocator swaps the nearest-node backend, e.g. for the R-tree index in
// package spatial. A nil locator is ignored.
func WithLocator(l Locator) Option {
	return func(o *Options) {
		if l != nil {
			o.Locator = l
		}
	}
}
