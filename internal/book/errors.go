package book

import "fmt"

// Kind categorizes a domain failure. The dispatcher translates each kind
// into a user-facing message, so kinds are stable and few.
type Kind int

const (
	// KindEmptyName is returned when a required name is missing.
	KindEmptyName Kind = iota + 1
	// KindInvalidPhone is returned when phone text has no plausible number in it.
	KindInvalidPhone
	// KindInvalidDate is returned when birthday text is not a real DD-MM-YYYY date.
	KindInvalidDate
	// KindNotFound is returned when no record exists under a name.
	KindNotFound
)

// String returns a short identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmptyName:
		return "empty name"
	case KindInvalidPhone:
		return "invalid phone"
	case KindInvalidDate:
		return "invalid date"
	case KindNotFound:
		return "not found"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error carries the kind of a failure and the offending input.
//
// Value is the exact text that was rejected (the phone, the date, the name
// that was looked up). It is empty for KindEmptyName.
type Error struct {
	Kind  Kind
	Value string
}

// Error implements the error interface.
//
// The message format is "addressbook: {kind}" or "addressbook: {kind}: {value}".
func (e *Error) Error() string {
	if e.Value == "" {
		return "addressbook: " + e.Kind.String()
	}
	return fmt.Sprintf("addressbook: %s: %q", e.Kind, e.Value)
}

// Is makes errors.Is match any *Error of the same kind, so the sentinels
// below can be compared against errors carrying a value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Value == "" || t.Value == e.Value)
}

// Sentinels for errors.Is.
var (
	ErrEmptyName    = &Error{Kind: KindEmptyName}
	ErrInvalidPhone = &Error{Kind: KindInvalidPhone}
	ErrInvalidDate  = &Error{Kind: KindInvalidDate}
	ErrNotFound     = &Error{Kind: KindNotFound}
)

func newError(kind Kind, value string) *Error {
	return &Error{Kind: kind, Value: value}
}
