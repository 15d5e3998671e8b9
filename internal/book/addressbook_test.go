package book_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/book"
)

func TestAddRecord_GetRecord(t *testing.T) {
	b := book.New()
	require.NoError(t, b.AddRecord("Alice", "+380501234567", "alice@x.com", "01-01-1990"))

	r, err := b.GetRecord("Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice +380501234567 alice@x.com 1990/01/01", r.String())
}

func TestAddRecord_OptionalFields(t *testing.T) {
	b := book.New()
	require.NoError(t, b.AddRecord("Bob", "", "", ""))

	r, err := b.GetRecord("Bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", r.String())
}

func TestAddRecord_Errors(t *testing.T) {
	tests := []struct {
		name                      string
		rName, phone, email, bday string
		expected                  error
	}{
		{"Empty name", "", "123-45-67", "", "", book.ErrEmptyName},
		{"Invalid phone", "Bob", "abc", "", "", book.ErrInvalidPhone},
		{"Invalid date", "Bob", "", "", "31-02-2023", book.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := book.New()
			err := b.AddRecord(tt.rName, tt.phone, tt.email, tt.bday)
			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, 0, b.Len(), "Nothing is stored on failure")
		})
	}
}

func TestAddRecord_Overwrites(t *testing.T) {
	b := book.New()
	require.NoError(t, b.AddRecord("Alice", "111-22-33", "", ""))
	require.NoError(t, b.AddRecord("Bob", "", "", ""))
	require.NoError(t, b.AddRecord("Alice", "444-55-66", "", ""))

	assert.Equal(t, 2, b.Len())
	r, err := b.GetRecord("Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice 444-55-66", r.String())
	assert.Equal(t, "Alice", b.Records()[0].Name().Value(), "Overwriting keeps the original position")
}

func TestGetRecord_Errors(t *testing.T) {
	b := book.New()

	_, err := b.GetRecord("")
	assert.ErrorIs(t, err, book.ErrEmptyName)

	_, err = b.GetRecord("Nobody")
	assert.ErrorIs(t, err, book.ErrNotFound)
	assert.ErrorIs(t, err, &book.Error{Kind: book.KindNotFound, Value: "Nobody"})
}

func TestFindRecords(t *testing.T) {
	b := book.New()
	require.NoError(t, b.AddRecord("Alice", "050-123-45", "alice@x.com", ""))
	require.NoError(t, b.AddRecord("Bob", "067-999-00", "", "01-01-1990"))
	require.NoError(t, b.AddRecord("Alina", "", "", ""))

	names := func(rs []*book.Record) []string {
		var out []string
		for _, r := range rs {
			out = append(out, r.Name().Value())
		}
		return out
	}

	assert.Equal(t, []string{"Alice", "Alina"}, names(b.FindRecords("Ali")))
	assert.Equal(t, []string{"Alice"}, names(b.FindRecords("x.com")))
	assert.Equal(t, []string{"Bob"}, names(b.FindRecords("1990/01")), "Search runs on the rendered text")
	assert.Empty(t, b.FindRecords("zzz"))
	assert.Len(t, b.FindRecords(""), 3)
}

func fill(t *testing.T, b *book.AddressBook, n int) {
	t.Helper()
	for i := range n {
		require.NoError(t, b.AddRecord(fmt.Sprintf("Contact %02d", i), "", "", ""))
	}
}

func TestPages(t *testing.T) {
	b := book.New()
	fill(t, b, 45)

	var sizes []int
	p := b.Pages()
	for page, ok := p.Next(); ok; page, ok = p.Next() {
		sizes = append(sizes, len(page))
	}
	assert.Equal(t, []int{20, 20, 5}, sizes)

	_, ok := p.Next()
	assert.False(t, ok, "An exhausted pager stays exhausted")

	require.NoError(t, b.SetItemsPerPage(50))
	p = b.Pages()
	page, ok := p.Next()
	require.True(t, ok)
	assert.Len(t, page, 45)
	_, ok = p.Next()
	assert.False(t, ok)
}

func TestPages_Snapshot(t *testing.T) {
	b := book.New()
	fill(t, b, 3)
	require.NoError(t, b.SetItemsPerPage(2))

	first := b.Pages()
	second := b.Pages()
	fill(t, b, 5)

	page, ok := first.Next()
	require.True(t, ok)
	assert.Equal(t, "Contact 00", page[0].Name().Value())

	_, ok = second.Next()
	require.True(t, ok)
	page, ok = second.Next()
	require.True(t, ok)
	assert.Len(t, page, 1, "Records added after Pages are not seen")

	page, ok = first.Next()
	require.True(t, ok)
	assert.Len(t, page, 1, "Independent pagers keep their own cursor")
}

func TestPages_Empty(t *testing.T) {
	_, ok := book.New().Pages().Next()
	assert.False(t, ok)
}

func TestSetItemsPerPage_Rejects(t *testing.T) {
	b := book.New()
	assert.Error(t, b.SetItemsPerPage(0))
	assert.Error(t, b.SetItemsPerPage(-1))
}

func TestShowAll(t *testing.T) {
	b := book.New()
	assert.Equal(t, "", b.ShowAll())

	require.NoError(t, b.AddRecord("Alice", "123-45-67", "", ""))
	require.NoError(t, b.AddRecord("Bob", "", "", ""))
	require.NoError(t, b.AddRecord("Carol", "", "", ""))
	require.NoError(t, b.SetItemsPerPage(2))

	sep := strings.Repeat("*", 15)
	expected := sep + "\nAlice 123-45-67\nBob\n" + sep + "\n" + sep + "\nCarol\n" + sep
	assert.Equal(t, expected, b.ShowAll())
}
