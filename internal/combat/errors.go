package combat

import "errors"

// Error message constants
const (
	ErrMsgInvalidTable = "invalid outcome table"
)

// ErrInvalidTable is returned by Table.Validate.
// Wrap with fmt.Errorf("%w: %s", ErrInvalidTable, details).
var ErrInvalidTable = errors.New(ErrMsgInvalidTable)
