package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/calendar"
	"github.com/tartampluch/go-addressbook/internal/cli"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/storage"
)

// app carries what the commands share: the resolved settings and the log file.
type app struct {
	settings  config.Settings
	logCloser io.Closer
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close() // Best effort close
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.BinaryName,
		Short: config.CmdShortRoot,
		Long: `An interactive address book. Type commands at the >>> prompt:

  hello                                 greeting
  add <name> [phone] [email] [birthday] create or replace a contact
  change <name> [phone] [email]         append a phone or an email
  phone <name>                          show a contact
  birthday <name>                       days until the next birthday
  show all                              list every contact, page by page
  delete <name> [phone] [email]         remove a phone or an email
  find <text>                           search every contact
  exit | close | good bye               save and quit

Birthdays are typed as DD-MM-YYYY.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.prepare,
		RunE:              a.runSession,
	}

	flags := cmd.PersistentFlags()
	flags.StringP(config.FlagFile, config.FlagFileS, config.DefaultBookFile, config.FlagDescFile)
	flags.Int(config.FlagPageSize, config.DefaultPageSize, config.FlagDescPageSize)
	flags.String(config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	flags.String(config.FlagConfig, config.DefaultSettingsPath(), config.FlagDescConfig)
	flags.Bool(config.FlagDebug, false, config.FlagDescDebug)

	cmd.AddCommand(newVersionCmd(), newCalendarCmd(a))
	return cmd
}

// prepare starts logging and resolves settings before any command runs.
func (a *app) prepare(cmd *cobra.Command, _ []string) error {
	debugMode, err := cmd.Flags().GetBool(config.FlagDebug)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrGetFlag, err)
	}
	a.logCloser = setupLogging(debugMode)
	logStartupInfo()

	s, err := resolveSettings(cmd)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrResolveSettings, err)
	}
	a.settings = s
	return nil
}

// resolveSettings layers explicitly set flags over the settings file.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	flags := cmd.Flags()

	path, err := flags.GetString(config.FlagConfig)
	if err != nil {
		return config.Settings{}, err
	}
	s, err := config.LoadSettings(path)
	if err != nil {
		return s, err
	}

	if flags.Changed(config.FlagFile) {
		if s.File, err = flags.GetString(config.FlagFile); err != nil {
			return s, err
		}
	}
	if flags.Changed(config.FlagPageSize) {
		if s.PageSize, err = flags.GetInt(config.FlagPageSize); err != nil {
			return s, err
		}
	}
	if flags.Changed(config.FlagLang) {
		if s.Language, err = flags.GetString(config.FlagLang); err != nil {
			return s, err
		}
	}
	return s, s.Validate()
}

func (a *app) runSession(cmd *cobra.Command, _ []string) error {
	msgs, err := cli.NewMessages(a.settings.Language)
	if err != nil {
		return err
	}
	s := &cli.Session{
		Store:    storage.NewFileStore(a.settings.File),
		Clock:    book.RealClock{},
		Messages: msgs,
		PageSize: a.settings.PageSize,
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
	}
	return s.Run(cmd.Context())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseVersion,
		Short: config.CmdShortVersion,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), config.MsgVersionOutput,
				config.AppName,
				config.Version,
				config.Commit,
				config.Date,
				runtime.GOOS,
				runtime.GOARCH,
			)
		},
	}
}

func newCalendarCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdUseCalendar,
		Short: config.CmdShortCalendar,
		Args:  cobra.NoArgs,
		RunE:  a.exportCalendar,
	}
	cmd.Flags().StringP(config.FlagOut, config.FlagOutS, config.DefaultCalendar, config.FlagDescOut)
	cmd.Flags().String(config.FlagRemind, "", config.FlagDescRemind)
	return cmd
}

func (a *app) exportCalendar(cmd *cobra.Command, _ []string) error {
	out, err := cmd.Flags().GetString(config.FlagOut)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrGetFlag, err)
	}
	trigger, err := cmd.Flags().GetString(config.FlagRemind)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrGetFlag, err)
	}

	b, err := storage.NewFileStore(a.settings.File).Load()
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrLoadBook, err)
	}

	//nolint:gosec // G304: the destination is chosen by the user.
	f, err := os.OpenFile(out, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrCreateCalendar, err)
	}

	count, err := calendar.Export(f, b.Records(), book.RealClock{}.Now(), trigger)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("%s: %w", config.ErrWriteCalendar, closeErr)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), config.MsgCalendarWritten, count, out)
	return nil
}
