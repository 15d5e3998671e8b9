// Package cli runs the interactive address book session: it dispatches parsed
// commands to the address book and translates every failure into a reply,
// so a bad command never ends the session.
package cli

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/parser"
)

// Store loads and saves the whole address book.
type Store interface {
	Load() (*book.AddressBook, error)
	Save(b *book.AddressBook) error
}

// Dispatcher executes one command line at a time against an address book.
type Dispatcher struct {
	Book     *book.AddressBook
	Clock    book.Clock
	Messages *Messages
}

// Reply is the outcome of one command line.
type Reply struct {
	// Text is printed as-is; it may span several lines or be empty.
	Text string
	// Exit asks the session to save and stop.
	Exit bool
}

// Dispatch parses and runs line.
func (d *Dispatcher) Dispatch(line string) Reply {
	cmd, rawArgs := parser.ParseUserInput(line)
	args := parser.Extract(rawArgs)
	log := slog.With(config.LogKeyComponent, config.CompCLI, config.LogKeyCommand, string(cmd))

	var (
		text string
		err  error
		exit bool
	)
	switch cmd {
	case parser.CmdHello:
		text = d.Messages.Get(config.TKeyHello, nil)
	case parser.CmdExit:
		exit = true
	case parser.CmdAdd:
		text, err = d.add(args)
	case parser.CmdChange:
		text, err = d.change(args)
	case parser.CmdPhone:
		text, err = d.show(args)
	case parser.CmdBirthday:
		text, err = d.birthday(args)
	case parser.CmdShowAll:
		text = d.showAll()
	case parser.CmdDelete:
		text, err = d.remove(args)
	case parser.CmdFind:
		text = d.find(args)
	default:
		log.Debug(config.MsgUnknownCmd)
		return Reply{Text: d.Messages.Get(config.TKeyUnknown, map[string]any{"Input": line})}
	}

	if err != nil {
		log.Debug(config.MsgCommandFailed, config.LogKeyError, err)
		return Reply{Text: d.translate(err)}
	}
	log.Debug(config.MsgCommand)
	return Reply{Text: text, Exit: exit}
}

// translate turns a categorized failure into its reply. Anything that is not
// a book.Error is shown with its own description.
func (d *Dispatcher) translate(err error) string {
	var bookErr *book.Error
	if !errors.As(err, &bookErr) {
		return err.Error()
	}
	switch bookErr.Kind {
	case book.KindEmptyName:
		return d.Messages.Get(config.TKeyEmptyName, nil)
	case book.KindNotFound:
		return d.Messages.Get(config.TKeyNotFound, map[string]any{"Name": bookErr.Value})
	case book.KindInvalidDate:
		return d.Messages.Get(config.TKeyInvalidDate, map[string]any{"Value": bookErr.Value})
	case book.KindInvalidPhone:
		return d.Messages.Get(config.TKeyInvalidPhone, map[string]any{"Value": bookErr.Value})
	default:
		return err.Error()
	}
}

func (d *Dispatcher) add(a parser.Arguments) (string, error) {
	if err := d.Book.AddRecord(a.Name, a.Phone, a.Email, a.Birthday); err != nil {
		return "", err
	}
	return d.Messages.Get(config.TKeyDone, nil), nil
}

func (d *Dispatcher) change(a parser.Arguments) (string, error) {
	r, err := d.Book.GetRecord(a.Name)
	if err != nil {
		return "", err
	}
	var lines []string
	if a.Phone != "" {
		if err := r.AddPhone(a.Phone); err != nil {
			return "", err
		}
		lines = append(lines, d.Messages.Get(config.TKeyPhoneAdded, nil))
	}
	if a.Email != "" {
		r.AddEmail(a.Email)
		lines = append(lines, d.Messages.Get(config.TKeyEmailAdded, nil))
	}
	if len(lines) == 0 {
		return d.Messages.Get(config.TKeyNothingToDo, map[string]any{"Name": a.Name}), nil
	}
	return strings.Join(lines, "\n"), nil
}

func (d *Dispatcher) show(a parser.Arguments) (string, error) {
	r, err := d.Book.GetRecord(a.Name)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func (d *Dispatcher) birthday(a parser.Arguments) (string, error) {
	r, err := d.Book.GetRecord(a.Name)
	if err != nil {
		return "", err
	}
	days, ok := r.DaysToBirthday(d.Clock.Now())
	if !ok {
		return d.Messages.Get(config.TKeyNoBirthday, map[string]any{"Name": a.Name}), nil
	}
	return d.Messages.Plural(config.TKeyDaysLeft, days, map[string]any{"Name": a.Name}), nil
}

func (d *Dispatcher) showAll() string {
	if d.Book.Len() == 0 {
		return d.Messages.Get(config.TKeyEmptyBook, nil)
	}
	return d.Book.ShowAll()
}

func (d *Dispatcher) remove(a parser.Arguments) (string, error) {
	r, err := d.Book.GetRecord(a.Name)
	if err != nil {
		return "", err
	}
	var lines []string
	if a.Phone != "" {
		key := config.TKeyNoPhone
		if r.DeletePhone(a.Phone) {
			key = config.TKeyPhoneDeleted
		}
		lines = append(lines, d.Messages.Get(key, map[string]any{"Name": a.Name, "Value": a.Phone}))
	}
	if a.Email != "" {
		key := config.TKeyNoEmail
		if r.DeleteEmail(a.Email) {
			key = config.TKeyEmailDeleted
		}
		lines = append(lines, d.Messages.Get(key, map[string]any{"Name": a.Name, "Value": a.Email}))
	}
	if len(lines) == 0 {
		return d.Messages.Get(config.TKeyNothingToDo, map[string]any{"Name": a.Name}), nil
	}
	return strings.Join(lines, "\n"), nil
}

// find searches with the raw argument text, not the extracted name.
func (d *Dispatcher) find(a parser.Arguments) string {
	records := d.Book.FindRecords(a.Raw)
	if len(records) == 0 {
		return d.Messages.Get(config.TKeyNoMatches, map[string]any{"Query": a.Raw})
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
