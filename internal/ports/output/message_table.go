package output

import "scerr/internal/domain"

// MessageTable is a read-only mapping from error codes to message text.
// It is loaded before any formatting call and must be safe for concurrent
// use.
type MessageTable interface {
	// Lookup returns the text for code when it is known and its length in
	// UTF-16 code units plus a terminator fits in maxChars.
	Lookup(code domain.ErrorCode, maxChars int) (string, bool)
}

// MessageTables hands out a MessageTable per locale.
type MessageTables interface {
	// Table returns a table preferring locale; an empty or unknown locale
	// resolves against the default locale.
	Table(locale string) MessageTable
}
