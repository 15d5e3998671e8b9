// Package storage persists an address book as a vCard 4.0 stream.
//
// Each record becomes one card: FN holds the name, every phone is a TEL,
// every email an EMAIL, and the birthday is written as BDAY in basic
// YYYYMMDD form. A name-based UID lets other vCard clients track contacts
// across saves.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// ErrForeignFormat reports a stream that is not an address book written by Encode.
var ErrForeignFormat = errors.New(config.MsgBookForeign)

// birthdayLayouts lists the BDAY forms accepted on read. Encode writes the first.
var birthdayLayouts = []string{
	config.BirthdayVCardLayout,
	time.DateOnly,
}

var uidNamespace = uuid.MustParse(config.UIDNamespace)

// UID returns the stable identifier derived from a contact name.
func UID(name string) string {
	return uuid.NewSHA1(uidNamespace, []byte(name)).String()
}

// Encode writes every record of b to w, in collection order.
func Encode(w io.Writer, b *book.AddressBook) error {
	enc := vcard.NewEncoder(w)
	for _, r := range b.Records() {
		if err := enc.Encode(toCard(r)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrEncodeBook, err)
		}
	}
	return nil
}

func toCard(r *book.Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldFormattedName, r.Name().Value())
	card.SetValue(vcard.FieldUID, config.UIDPrefix+UID(r.Name().Value()))
	for _, p := range r.Phones() {
		card.AddValue(vcard.FieldTelephone, p.Value())
	}
	for _, e := range r.Emails() {
		card.AddValue(vcard.FieldEmail, e.Value())
	}
	if bd, ok := r.Birthday(); ok {
		card.SetValue(vcard.FieldBirthday, bd.Date().Format(config.BirthdayVCardLayout))
	}
	return card
}

// Decode reads a stream written by Encode. An empty or blank stream is an
// empty book. Anything else must hold at least one card, and every card must
// turn back into a valid record; otherwise the error wraps ErrForeignFormat
// and no partial book is returned.
func Decode(r io.Reader) (*book.AddressBook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrReadBook, err)
	}

	b := book.New()
	if len(bytes.TrimSpace(data)) == 0 {
		return b, nil
	}

	dec := vcard.NewDecoder(bytes.NewReader(data))
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrForeignFormat, err)
		}
		rec, err := fromCard(card)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrForeignFormat, err)
		}
		b.Put(rec)
	}

	// A stream without BEGIN:VCARD reaches EOF before any card.
	if b.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrForeignFormat, config.ErrNoCards)
	}
	return b, nil
}

func fromCard(card vcard.Card) (*book.Record, error) {
	name, err := book.NewName(card.Value(vcard.FieldFormattedName))
	if err != nil {
		return nil, err
	}
	rec := book.NewRecord(name)
	for _, tel := range card.Values(vcard.FieldTelephone) {
		if err := rec.AddPhone(tel); err != nil {
			return nil, err
		}
	}
	for _, email := range card.Values(vcard.FieldEmail) {
		rec.AddEmail(email)
	}
	if raw := card.Value(vcard.FieldBirthday); raw != "" {
		bd, err := parseBirthday(raw)
		if err != nil {
			return nil, err
		}
		rec.SetBirthday(bd)
	}
	return rec, nil
}

func parseBirthday(raw string) (book.Birthday, error) {
	for _, layout := range birthdayLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return book.BirthdayFromDate(t), nil
		}
	}
	return book.Birthday{}, &book.Error{Kind: book.KindInvalidDate, Value: raw}
}
