package portfolio

import "errors"

// Precondition violations reported by the position ledger. All are detected
// before any state mutation, so a failed call leaves the position unchanged.
var (
	// ErrPositionClosed is returned when an operation is attempted on a
	// position that has already been closed.
	ErrPositionClosed = errors.New("position is closed")

	// ErrContractMismatch is returned when a transaction's contract does not
	// match the contract the position is bound to.
	ErrContractMismatch = errors.New("transaction contract does not match position contract")

	// ErrInvalidTransaction is returned for a zero quantity or a non-positive
	// price. Short sales use a negative quantity, never a negative price.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrDirectionChange is returned when a transaction would flip the
	// position from long to short (or vice versa) in a single step. The
	// position must be closed first and a new one opened on the other side.
	ErrDirectionChange = errors.New("transaction would reverse position direction")
)
