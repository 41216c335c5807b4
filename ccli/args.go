package ccli

import (
	"strconv"
	"strings"
)

// flagPrefix marks an argument name as a command-line flag.
const flagPrefix = "-"

// Arg is one element of an argument list.
type Arg interface {
	// words returns the argv words for the argument, or nil when it is dropped.
	words() []string
}

// Args is an ordered argument list for a CLI command.
type Args []Arg

// ID is a positional numeric argument (an entity id or a count).
// Positional arguments are always kept.
type ID int64

func (id ID) words() []string {
	return []string{strconv.FormatInt(int64(id), 10)}
}

// Pair is a flag with its value. A pair is only emitted when the flag starts
// with "-" and the value is non-empty, so optional fields can always be passed
// and simply vanish when unset.
type Pair struct {
	Flag  string
	Value string
}

func (p Pair) words() []string {
	if !strings.HasPrefix(p.Flag, flagPrefix) || p.Value == "" {
		return nil
	}
	return []string{p.Flag, p.Value}
}

// F builds a flag/value pair.
func F(flag, value string) Pair {
	return Pair{Flag: flag, Value: value}
}

// FInt builds a flag/value pair from an integer value.
func FInt(flag string, value int64) Pair {
	return Pair{Flag: flag, Value: strconv.FormatInt(value, 10)}
}

// Argv returns the words handed to the CLI after the command name. Each
// value is one word, passed through byte for byte.
func (a Args) Argv() []string {
	var argv []string
	for _, arg := range a {
		if arg == nil {
			continue
		}
		argv = append(argv, arg.words()...)
	}
	return argv
}

// Marshal renders args as a single space-joined string for logs and
// diagnostics. Nil or empty args yield "".
func Marshal(args Args) string {
	return strings.Join(args.Argv(), " ")
}

// String implements fmt.Stringer.
func (a Args) String() string {
	return Marshal(a)
}
