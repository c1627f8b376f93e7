package flexbox

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

// ScopeOption is a functional option for configuring a Scope.
type ScopeOption func(*Scope) error

// WithDensity sets the factor applied to Constant dimensions before they
// reach the solver, e.g. pixels per density-independent unit.
// Default is 1. Must be positive and finite.
func WithDensity(density float32) ScopeOption {
	return func(s *Scope) error {
		if !(density > 0) || math.IsInf(float64(density), 0) {
			return fmt.Errorf("density must be positive and finite, got %v", density)
		}
		s.density = density
		return nil
	}
}

// WithPointScaleFactor sets the grid solved boxes are rounded to, in
// points per solver unit. Default is 1 (whole units). Zero disables
// rounding.
func WithPointScaleFactor(factor float32) ScopeOption {
	return func(s *Scope) error {
		if factor < 0 || math.IsNaN(float64(factor)) {
			return fmt.Errorf("point scale factor cannot be negative, got %v", factor)
		}
		s.pointScale = factor
		return nil
	}
}

// WithLogger sets the logger for pass timing and style fallbacks.
// Default is the shared debug logger, enabled by FLEXBOX_DEBUG and looked
// up on every write so debug.Init and debug.Close take effect.
func WithLogger(l *log.Logger) ScopeOption {
	return func(s *Scope) error {
		if l == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = l
		return nil
	}
}

// WithFlexibleAxes marks axes that are solved without a bound when the
// scope is measured as nested content, so the scope wraps its children
// on those axes instead of filling the constraint.
func WithFlexibleAxes(axes Axes) ScopeOption {
	return func(s *Scope) error {
		if axes&^(Horizontal|Vertical) != 0 {
			return fmt.Errorf("unknown axes %b", axes)
		}
		s.flexible = axes
		return nil
	}
}
