package book

import (
	"slices"
	"strings"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Record is one contact. The name is fixed at creation; phones and emails
// keep insertion order and may repeat.
type Record struct {
	name     Name
	birthday *Birthday
	phones   []Phone
	emails   []Email
}

// NewRecord creates an empty record for name.
func NewRecord(name Name) *Record {
	return &Record{name: name}
}

// Name returns the record's identity.
func (r *Record) Name() Name { return r.name }

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// SetBirthday replaces the birthday.
func (r *Record) SetBirthday(b Birthday) {
	r.birthday = &b
}

// Phones returns a copy of the phone list.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// Emails returns a copy of the email list.
func (r *Record) Emails() []Email { return slices.Clone(r.emails) }

// AddPhone validates text and appends it.
func (r *Record) AddPhone(text string) error {
	p, err := NewPhone(text)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// AddEmail appends text as an email.
func (r *Record) AddEmail(text string) {
	r.emails = append(r.emails, NewEmail(text))
}

// DeletePhone removes the first phone stored exactly as text.
// It reports false, and changes nothing, when there is none.
func (r *Record) DeletePhone(text string) bool {
	i := slices.IndexFunc(r.phones, func(p Phone) bool { return p.value == text })
	if i < 0 {
		return false
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return true
}

// DeleteEmail removes the first email stored exactly as text.
func (r *Record) DeleteEmail(text string) bool {
	i := slices.IndexFunc(r.emails, func(e Email) bool { return e.value == text })
	if i < 0 {
		return false
	}
	r.emails = slices.Delete(r.emails, i, i+1)
	return true
}

// NextBirthday returns the next anniversary on or after the calendar day of now,
// in now's location. A birthday falling today is returned as today.
//
// time.Date normalizes 29 February to 1 March in non-leap years.
func (r *Record) NextBirthday(now time.Time) (time.Time, bool) {
	if r.birthday == nil {
		return time.Time{}, false
	}
	loc := now.Location()
	month, day := r.birthday.date.Month(), r.birthday.date.Day()

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	candidate := time.Date(now.Year(), month, day, 0, 0, 0, 0, loc)
	if candidate.Before(todayStart) {
		candidate = time.Date(now.Year()+1, month, day, 0, 0, 0, 0, loc)
	}
	return candidate, true
}

// DaysToBirthday returns the number of days until the next anniversary, 0 when it is today.
// The second value is false when no birthday is set.
func (r *Record) DaysToBirthday(now time.Time) (int, bool) {
	next, ok := r.NextBirthday(now)
	if !ok {
		return 0, false
	}
	// Count whole calendar days in UTC so DST shifts in now's location do not
	// shorten or lengthen a day.
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours()) / config.HoursPerDay, true
}

// String renders the record on one line: name, phones, emails, birthday.
func (r *Record) String() string {
	parts := []string{r.name.value}
	if len(r.phones) > 0 {
		values := make([]string, len(r.phones))
		for i, p := range r.phones {
			values[i] = p.value
		}
		parts = append(parts, strings.Join(values, config.ListSeparator))
	}
	if len(r.emails) > 0 {
		values := make([]string, len(r.emails))
		for i, e := range r.emails {
			values[i] = e.value
		}
		parts = append(parts, strings.Join(values, config.ListSeparator))
	}
	if r.birthday != nil {
		parts = append(parts, r.birthday.String())
	}
	return strings.Join(parts, config.FieldJoiner)
}
