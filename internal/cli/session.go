package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Session is one run of the read loop: load, dispatch lines, save.
type Session struct {
	Store    Store
	Clock    book.Clock
	Messages *Messages
	PageSize int

	In  io.Reader
	Out io.Writer
}

// Run loads the address book, then reads commands until an exit-class
// command, end of input or cancellation of ctx, and saves before returning.
// Command errors are replies, not failures: only load, save and input
// errors are returned.
func (s *Session) Run(ctx context.Context) error {
	log := slog.With(config.LogKeyComponent, config.CompCLI)

	b, err := s.Store.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrLoadBook, err)
	}
	if s.PageSize > 0 {
		if err := b.SetItemsPerPage(s.PageSize); err != nil {
			return err
		}
	}

	d := &Dispatcher{Book: b, Clock: s.Clock, Messages: s.Messages}
	lines, readErr := scanLines(ctx, s.In)

	for {
		fmt.Fprint(s.Out, config.Prompt)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			log.Info(config.MsgCtxCancel)
			fmt.Fprintln(s.Out)
			return s.save(b)
		case line, ok = <-lines:
		}

		if !ok {
			if err := <-readErr; err != nil {
				return errors.Join(fmt.Errorf("%s: %w", config.ErrReadInput, err), s.save(b))
			}
			log.Info(config.MsgEOF)
			fmt.Fprintln(s.Out)
			return s.finish(b)
		}

		reply := d.Dispatch(line)
		if reply.Exit {
			return s.finish(b)
		}
		if reply.Text != "" {
			fmt.Fprintln(s.Out, reply.Text)
		}
	}
}

// finish saves and says goodbye.
func (s *Session) finish(b *book.AddressBook) error {
	if err := s.save(b); err != nil {
		return err
	}
	fmt.Fprintln(s.Out, s.Messages.Get(config.TKeyGoodBye, nil))
	return nil
}

func (s *Session) save(b *book.AddressBook) error {
	if err := s.Store.Save(b); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveOnExit, err)
	}
	return nil
}

// scanLines feeds lines from r into a channel so the read loop can also
// watch for cancellation. The channel is closed at end of input; the error
// channel then yields the scanner error, or nil.
func scanLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), config.MaxLineSize)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}
