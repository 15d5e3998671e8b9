// Package book holds the address book data model: validated field values,
// contact records and the name-keyed collection with paginated traversal.
package book

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// AddressBook maps contact names to records.
//
// Records are kept in insertion order. Replacing a record under an existing
// name keeps its original position. An AddressBook is not safe for
// concurrent use.
type AddressBook struct {
	records  map[string]*Record
	order    []string
	pageSize int
}

// New returns an empty address book with the default page size.
func New() *AddressBook {
	return &AddressBook{
		records:  make(map[string]*Record),
		pageSize: config.DefaultPageSize,
	}
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.order) }

// Put stores r under its name, overwriting any record with the same name.
func (b *AddressBook) Put(r *Record) {
	key := r.name.value
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Records returns the records in collection order. The slice is a fresh copy;
// the records themselves are shared.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, len(b.order))
	for i, key := range b.order {
		out[i] = b.records[key]
	}
	return out
}

// AddRecord builds a record from raw text and stores it. Empty phone, email
// or birthday means "not provided". Nothing is stored when any field is invalid.
func (b *AddressBook) AddRecord(name, phone, email, birthday string) error {
	n, err := NewName(name)
	if err != nil {
		return err
	}
	r := NewRecord(n)
	if phone != "" {
		if err := r.AddPhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		r.AddEmail(email)
	}
	if birthday != "" {
		bd, err := NewBirthday(birthday)
		if err != nil {
			return err
		}
		r.SetBirthday(bd)
	}
	b.Put(r)
	return nil
}

// GetRecord returns the record stored under name.
func (b *AddressBook) GetRecord(name string) (*Record, error) {
	if name == "" {
		return nil, newError(KindEmptyName, "")
	}
	r, ok := b.records[name]
	if !ok {
		return nil, newError(KindNotFound, name)
	}
	return r, nil
}

// FindRecords returns every record whose rendered text contains substr, in collection order.
func (b *AddressBook) FindRecords(substr string) []*Record {
	var found []*Record
	for _, r := range b.Records() {
		if strings.Contains(r.String(), substr) {
			found = append(found, r)
		}
	}
	return found
}

// SetItemsPerPage changes the page size used by subsequent calls to Pages.
func (b *AddressBook) SetItemsPerPage(n int) error {
	if n < 1 {
		return fmt.Errorf("%s: %d", config.ErrPageSize, n)
	}
	b.pageSize = n
	return nil
}

// Pages begins a traversal over a snapshot of the current records.
// Records added afterwards are not seen by the returned pager.
func (b *AddressBook) Pages() *Pager {
	return &Pager{snapshot: b.Records(), size: b.pageSize}
}

// ShowAll renders every record, one per line, grouped into pages.
// Each page is bracketed by separator lines; an empty book renders as "".
func (b *AddressBook) ShowAll() string {
	var pages []string
	p := b.Pages()
	for page, ok := p.Next(); ok; page, ok = p.Next() {
		var sb strings.Builder
		sb.WriteString(config.PageSeparator)
		sb.WriteByte('\n')
		for _, r := range page {
			sb.WriteString(r.String())
			sb.WriteByte('\n')
		}
		sb.WriteString(config.PageSeparator)
		pages = append(pages, sb.String())
	}
	return strings.Join(pages, "\n")
}
