package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-addressbook/internal/parser"
)

func TestParseUserInput(t *testing.T) {
	tests := []struct {
		input string
		cmd   parser.Command
		args  string
	}{
		{"show all", parser.CmdShowAll, ""},
		{"  SHOW ALL  ", parser.CmdShowAll, ""},
		{"hello", parser.CmdHello, ""},
		{"Hello", parser.CmdHello, ""},
		{"exit", parser.CmdExit, ""},
		{"close", parser.CmdExit, ""},
		{"Good Bye", parser.CmdExit, ""},
		{"add Bob 123-45-67", parser.CmdAdd, "Bob 123-45-67"},
		{"ADD  Bob  ", parser.CmdAdd, "Bob"},
		{"Change Olena Kovalenko 050-1234567", parser.CmdChange, "Olena Kovalenko 050-1234567"},
		{"phone Bob", parser.CmdPhone, "Bob"},
		{"phone", parser.CmdPhone, ""},
		{"birthday Bob", parser.CmdBirthday, "Bob"},
		{"delete Bob 123-45-67", parser.CmdDelete, "Bob 123-45-67"},
		{"find x.com", parser.CmdFind, "x.com"},
		{"address", parser.CmdAdd, "ress"},
		{"hello there", parser.CmdNone, ""},
		{"show", parser.CmdNone, ""},
		{"", parser.CmdNone, ""},
		{"remove Bob", parser.CmdNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, args := parser.ParseUserInput(tt.input)
			assert.Equal(t, tt.cmd, cmd)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestExtractors(t *testing.T) {
	args := "Bob Smith +1(234)567-89-01 bob_s@mail.com 17-05-1990"

	assert.Equal(t, "+1(234)567-89-01", parser.PhoneFromArgs(args))
	assert.Equal(t, "bob_s@mail.com", parser.EmailFromArgs(args))
	assert.Equal(t, "17-05-1990", parser.BirthdayFromArgs(args))

	assert.Equal(t, "", parser.PhoneFromArgs("Bob"))
	assert.Equal(t, "", parser.EmailFromArgs("bob@localhost"))
	assert.Equal(t, "", parser.BirthdayFromArgs("1990-05-17"))
	assert.Equal(t, "31-02-2023", parser.BirthdayFromArgs("Bob 31-02-2023"), "Shape only, not calendar validity")
}

func TestBirthdayIsNotAPhone(t *testing.T) {
	assert.Equal(t, "", parser.PhoneFromArgs("Ann 01-01-1990"))
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		args     string
		expected parser.Arguments
	}{
		{
			name: "Everything",
			args: "Alice +380501234567 alice@x.com 01-01-1990",
			expected: parser.Arguments{
				Raw:      "Alice +380501234567 alice@x.com 01-01-1990",
				Name:     "Alice",
				Phone:    "+380501234567",
				Email:    "alice@x.com",
				Birthday: "01-01-1990",
			},
		},
		{
			name: "Name with spaces, fields in any order",
			args: "01-01-1990 Mary Ann 123-45-67",
			expected: parser.Arguments{
				Raw:      "01-01-1990 Mary Ann 123-45-67",
				Name:     "Mary Ann",
				Phone:    "123-45-67",
				Birthday: "01-01-1990",
			},
		},
		{
			name:     "Name only",
			args:     "Bob",
			expected: parser.Arguments{Raw: "Bob", Name: "Bob"},
		},
		{
			name:     "Empty",
			args:     "",
			expected: parser.Arguments{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parser.Extract(tt.args))
		})
	}
}

func TestNameFromArgs_RemovesOnce(t *testing.T) {
	name := parser.NameFromArgs("Bob 123-45-67 123-45-67", "123-45-67", "", "")
	assert.Equal(t, "Bob  123-45-67", name)
}
