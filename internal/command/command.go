// Package command parses the textual commands shared by the spark-kv
// command line tools.
//
// Input lines are split using shell quoting rules, so keys and values
// containing spaces can be written as "quoted strings".
package command

import (
	"errors"
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// ErrEmpty is returned by Parse when the input contains no command.
var ErrEmpty = errors.New("command: empty input")

// Command represents a parsed user command.
//
// A Command consists of a command name (Name), an optional key, and an
// optional value. The meaning of Key and Val depends on the command
// (e.g. get, set, rm).
type Command struct {
	Name string // Command name (e.g. "get", "set", "rm")
	Key  string // Key argument (may be empty)
	Val  string // Value argument (may be empty)
}

// signatures maps each recognized command name to its required argument
// count and usage string.
var signatures = map[string]struct {
	args  int
	usage string
}{
	"set":   {2, "set <key> <value>"},
	"get":   {1, "get <key>"},
	"rm":    {1, "rm <key>"},
	"keys":  {0, "keys"},
	"count": {0, "count"},
	"help":  {0, "help"},
	"exit":  {0, "exit"},
}

// Parse splits a raw input line using shell quoting rules and validates
// the result. For example:
//
//	set city "new york"
//
// parses to Command{Name: "set", Key: "city", Val: "new york"}.
func Parse(line string) (Command, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return Command{}, fmt.Errorf("command: %w", err)
	}

	return FromArgs(words)
}

// FromArgs validates an already-split argument list, such as the
// positional arguments left over after flag parsing. Command names are
// case-insensitive; keys and values are not.
func FromArgs(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, ErrEmpty
	}

	name := strings.ToLower(args[0])
	sig, ok := signatures[name]
	if !ok {
		return Command{}, fmt.Errorf("command: unknown command %q", name)
	}

	if len(args)-1 != sig.args {
		return Command{}, fmt.Errorf("command: usage: %s", sig.usage)
	}

	cmd := Command{Name: name}
	if sig.args >= 1 {
		cmd.Key = args[1]
	}
	if sig.args >= 2 {
		cmd.Val = args[2]
	}

	return cmd, nil
}
