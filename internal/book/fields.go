package book

import (
	"regexp"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// phonePattern accepts text containing a plausible phone number anywhere in it.
var phonePattern = regexp.MustCompile(config.PhonePattern)

// Name is the identity of a record. The zero value is never handed out by NewName.
type Name struct {
	value string
}

// NewName returns ErrEmptyName for "".
func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, newError(KindEmptyName, "")
	}
	return Name{value: value}, nil
}

// Value returns the name exactly as given.
func (n Name) Value() string { return n.value }

func (n Name) String() string { return n.value }

// Phone is a phone number kept verbatim (punctuation included).
type Phone struct {
	value string
}

// NewPhone validates that value contains something shaped like a phone number.
// The match may be a substring: "tel. 123-45-67" is accepted and stored whole.
func NewPhone(value string) (Phone, error) {
	if !phonePattern.MatchString(value) {
		return Phone{}, newError(KindInvalidPhone, value)
	}
	return Phone{value: value}, nil
}

// Value returns the phone as it was typed.
func (p Phone) Value() string { return p.value }

func (p Phone) String() string { return p.value }

// Email wraps an address. It is not validated: anything the user types is kept.
type Email struct {
	value string
}

// NewEmail never fails.
func NewEmail(value string) Email {
	return Email{value: value}
}

// Value returns the address as it was typed.
func (e Email) Value() string { return e.value }

func (e Email) String() string { return e.value }

// Birthday is a calendar date with no time of day, stored at midnight UTC.
type Birthday struct {
	date time.Time
}

// NewBirthday parses DD-MM-YYYY. time.Parse rejects both malformed text and
// impossible dates such as 31-02-2023.
func NewBirthday(value string) (Birthday, error) {
	t, err := time.Parse(config.BirthdayInputLayout, value)
	if err != nil {
		return Birthday{}, newError(KindInvalidDate, value)
	}
	return Birthday{date: t}, nil
}

// BirthdayFromDate builds a Birthday from an already valid date, dropping the time of day.
func BirthdayFromDate(t time.Time) Birthday {
	y, m, d := t.Date()
	return Birthday{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// String renders the birthday as YYYY/MM/DD.
func (b Birthday) String() string {
	return b.date.Format(config.BirthdayDisplayLayout)
}
