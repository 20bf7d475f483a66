package quadtree

import (
	"fmt"
	"math"
)

// MaxDepthLimit caps Config.MaxDepth. Below that many halvings quadrant
// sizes are no longer representable with reasonable precision.
const MaxDepthLimit = 48

// Config configures a quadtree.
type Config struct {
	// MaxValues is the number of entries a leaf holds before it is subdivided.
	// It must be positive.
	MaxValues int
	// BorderSize inflates every node's box by BorderSize/2 on each side,
	// creating an overlap zone between siblings.
	BorderSize float64
	// MaxDepth is the number of subdivision levels allowed below the root.
	MaxDepth int
	// Epsilon is the per-axis tolerance used when matching points in Remove
	// and ChangePos. 0 means exact comparison.
	Epsilon float64
}

// DefaultConfig returns a configuration with capacity 16, no border and a
// depth limit of 10.
func DefaultConfig() Config {
	return Config{
		MaxValues: 16,
		MaxDepth:  10,
	}
}

func (cfg Config) validate() error {
	if cfg.MaxDepth < 0 || cfg.MaxDepth > MaxDepthLimit {
		return fmt.Errorf("%w: max depth %d not in [0,%d]", ErrInvalidConfig, cfg.MaxDepth, MaxDepthLimit)
	}
	if math.IsNaN(cfg.BorderSize) || math.IsInf(cfg.BorderSize, 0) || cfg.BorderSize < 0 {
		return fmt.Errorf("%w: border size %g", ErrInvalidConfig, cfg.BorderSize)
	}
	if math.IsNaN(cfg.Epsilon) || math.IsInf(cfg.Epsilon, 0) || cfg.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon %g", ErrInvalidConfig, cfg.Epsilon)
	}
	return nil
}
