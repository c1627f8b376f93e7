package flexbox

import (
	"errors"

	"github.com/grindlemire/go-flexbox/internal/classes"
	"github.com/grindlemire/go-flexbox/internal/solver"
)

var (
	// ErrNotAncestor is returned by PositionIn when the walk up the owner
	// chain ends before reaching the requested ancestor.
	ErrNotAncestor = errors.New("flexbox: not an ancestor")

	// ErrOwnershipViolation is the panic value for inserting a node that
	// still has an owner. Scope.Update never does this.
	ErrOwnershipViolation = solver.ErrOwnershipViolation

	// ErrUnknownClass is wrapped by ParseClasses for unrecognized classes.
	ErrUnknownClass = classes.ErrUnknownClass
)
