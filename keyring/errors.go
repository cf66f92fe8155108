package keyring

import (
	"errors"
)

var (
	// ErrNotFound is returned when no credential row matches the requested
	// (service, username) pair.
	ErrNotFound = errors.New("password not found")

	// ErrSheetNotFound is returned when an explicit spreadsheet key or URL does
	// not resolve to a spreadsheet.
	ErrSheetNotFound = errors.New("spreadsheet not found")

	// ErrAmbiguousSheet is returned when more than one spreadsheet matches the
	// configured document title.
	ErrAmbiguousSheet = errors.New("more than one spreadsheet matches title")
)
