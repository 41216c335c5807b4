package ccli

import (
	"fmt"
	"slices"
)

// Program is a top-level casual-cli program.
type Program string

// Programs accepted by casual-cli.
const (
	ProgramAccount  Program = "account"
	ProgramProject  Program = "project"
	ProgramSchedule Program = "schedule"
	ProgramFinance  Program = "finance"
)

// Command is a program subcommand, e.g. "list-companies".
type Command string

// Mode selects how the CLI prints its result and how stdout is interpreted.
type Mode string

const (
	// ModeNormal is human-readable text.
	ModeNormal Mode = "normal"
	// ModeHTML is an HTML fragment meant for direct embedding.
	ModeHTML Mode = "html"
	// ModeValue is a bare value such as an inserted row id.
	ModeValue Mode = "value"
	// ModeJSON is a JSON object or array.
	ModeJSON Mode = "json"
)

// Modes returns all output modes.
func Modes() []Mode {
	return []Mode{ModeNormal, ModeHTML, ModeValue, ModeJSON}
}

// IsValid reports whether m is a known output mode.
func (m Mode) IsValid() bool {
	return slices.Contains(Modes(), m)
}

// ParseMode converts s into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

// Vocabulary lists the commands each program accepts.
var Vocabulary = map[Program][]Command{
	ProgramAccount: {
		"list", "ls", "list-companies", "list-addresses", "list-contracts",
		"add", "add-company", "add-address", "add-contract",
		"update", "update-company", "update-address", "update-contract",
		"get", "get-company", "get-address", "get-contract",
		"remove", "remove-company", "remove-address",
	},
	ProgramProject: {
		"list", "ls", "list-tasks", "list-quotes", "list-invoices",
		"add", "add-task",
		"get", "get-task", "complete-task",
		"get-quote", "get-invoice",
		"make-quote", "make-invoice",
		"update", "update-task", "update-quote", "update-invoice",
		"remove", "remove-task", "remove-quote", "remove-invoice",
	},
	ProgramSchedule: {"list", "ls", "get", "add", "update", "remove"},
	ProgramFinance:  {"report", "add-query", "update-report", "update-query", "remove", "remove-query"},
}

// Programs returns the known programs in a stable order.
func Programs() []Program {
	return []Program{ProgramAccount, ProgramProject, ProgramSchedule, ProgramFinance}
}

// Validate checks that command belongs to program.
func Validate(program Program, command Command) error {
	commands, ok := Vocabulary[program]
	if !ok {
		return fmt.Errorf("%w: program %q", ErrUnknownCommand, program)
	}
	if !slices.Contains(commands, command) {
		return fmt.Errorf("%w: %s %q", ErrUnknownCommand, program, command)
	}
	return nil
}
