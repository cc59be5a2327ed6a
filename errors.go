package journal

import "errors"

var (
	// ErrOutOfRange is returned when a role or an index does not address an
	// existing column or transaction.
	ErrOutOfRange = errors.New("out of range")
	// ErrCoreColumnUndeletable is returned when trying to delete one of the
	// nine core columns.
	ErrCoreColumnUndeletable = errors.New("core columns cannot be deleted")
	// ErrInvalidColumnEdit is returned when an edit would change the kind or
	// the description of a core column, or turn an extra column into a kind
	// that cannot be an extra column.
	ErrInvalidColumnEdit = errors.New("invalid column edit")
	// ErrDuplicateColumnName is returned when an extra column would take the
	// name of another extra column. Extra values are keyed by column name.
	ErrDuplicateColumnName = errors.New("duplicate column name")
	// ErrInvalidColumnOrder is returned when a column order references an
	// unknown column or references the same column twice.
	ErrInvalidColumnOrder = errors.New("invalid column order")
	// ErrUnknownAsset is returned when a ticker is not declared in the account.
	ErrUnknownAsset     = errors.New("unknown asset")
	ErrDuplicateTicker  = errors.New("duplicate ticker")
	ErrDuplicateJournal = errors.New("duplicate journal")
	ErrUnknownJournal   = errors.New("unknown journal")
	// ErrInvalidExtraValue is returned when a transaction carries an extra
	// value that does not match the kind of its column.
	ErrInvalidExtraValue = errors.New("invalid extra value")
)
