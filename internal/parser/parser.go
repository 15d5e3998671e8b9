// Package parser turns a raw input line into a command keyword and extracts
// phone, email, birthday and name substrings from its arguments.
package parser

import (
	"regexp"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Command is a normalized action keyword.
type Command string

const (
	CmdNone     Command = ""
	CmdHello    Command = "hello"
	CmdExit     Command = "exit"
	CmdShowAll  Command = "show_all"
	CmdAdd      Command = "add"
	CmdChange   Command = "change"
	CmdPhone    Command = "phone"
	CmdBirthday Command = "birthday"
	CmdDelete   Command = "delete"
	CmdFind     Command = "find"
)

// noArgCommands must match the whole line, case-insensitively.
var noArgCommands = map[string]Command{
	"hello":    CmdHello,
	"exit":     CmdExit,
	"close":    CmdExit,
	"good bye": CmdExit,
	"show all": CmdShowAll,
}

// argCommands are matched as a prefix of the line. No keyword is a prefix of another.
var argCommands = []Command{CmdAdd, CmdChange, CmdPhone, CmdBirthday, CmdDelete, CmdFind}

var (
	phonePattern    = regexp.MustCompile(config.PhonePattern)
	emailPattern    = regexp.MustCompile(config.EmailPattern)
	birthdayPattern = regexp.MustCompile(config.BirthdayPattern)
)

// ParseUserInput returns the command and its arguments. Arguments keep the
// original case. An unrecognized line yields CmdNone and "".
//
// Keywords are matched as prefixes, so "address" parses as add with "ress".
func ParseUserInput(line string) (Command, string) {
	line = strings.TrimSpace(line)
	if cmd, ok := noArgCommands[strings.ToLower(line)]; ok {
		return cmd, ""
	}
	for _, cmd := range argCommands {
		kw := string(cmd)
		if len(line) >= len(kw) && strings.EqualFold(line[:len(kw)], kw) {
			return cmd, strings.TrimSpace(line[len(kw):])
		}
	}
	return CmdNone, ""
}

// PhoneFromArgs returns the first phone-shaped substring of args, or "".
func PhoneFromArgs(args string) string {
	return phonePattern.FindString(args)
}

// EmailFromArgs returns the first email-shaped substring of args, or "".
func EmailFromArgs(args string) string {
	return emailPattern.FindString(args)
}

// BirthdayFromArgs returns the first DD-DD-DDDD substring of args, or "".
// The date itself is checked later, by book.NewBirthday.
func BirthdayFromArgs(args string) string {
	return birthdayPattern.FindString(args)
}

// NameFromArgs removes one occurrence each of phone, email and birthday from
// args and returns what is left, trimmed.
func NameFromArgs(args, phone, email, birthday string) string {
	for _, found := range []string{phone, email, birthday} {
		if found != "" {
			args = strings.Replace(args, found, "", 1)
		}
	}
	return strings.TrimSpace(args)
}

// Arguments bundles everything extracted from a command's argument text.
type Arguments struct {
	Raw      string
	Name     string
	Phone    string
	Email    string
	Birthday string
}

// Extract runs every extractor over args.
func Extract(args string) Arguments {
	a := Arguments{
		Raw:      args,
		Phone:    PhoneFromArgs(args),
		Email:    EmailFromArgs(args),
		Birthday: BirthdayFromArgs(args),
	}
	a.Name = NameFromArgs(args, a.Phone, a.Email, a.Birthday)
	return a
}
