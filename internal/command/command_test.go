package command_test

import (
	"errors"
	"testing"

	"github.com/logan-bobo/spark-kv/internal/command"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want command.Command
	}{
		{"set command", "set foo bar", command.Command{Name: "set", Key: "foo", Val: "bar"}},
		{"get command", "get hello", command.Command{Name: "get", Key: "hello"}},
		{"rm command", "rm hello", command.Command{Name: "rm", Key: "hello"}},
		{"keys command", "keys", command.Command{Name: "keys"}},
		{"count command", "count", command.Command{Name: "count"}},
		{"quoted value with spaces", `set city "new york"`, command.Command{Name: "set", Key: "city", Val: "new york"}},
		{"single quoted value", `set greeting 'hello world'`, command.Command{Name: "set", Key: "greeting", Val: "hello world"}},
		{"quoted empty value", `set blank ""`, command.Command{Name: "set", Key: "blank", Val: ""}},
		{"unicode value", "set emoji 🚀🔥", command.Command{Name: "set", Key: "emoji", Val: "🚀🔥"}},
		{"extra whitespace between words", "set   spaced    out", command.Command{Name: "set", Key: "spaced", Val: "out"}},
		{"uppercase command name", "SET Foo Bar", command.Command{Name: "set", Key: "Foo", Val: "Bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if got != tt.want {
				t.Errorf("Parse mismatch: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"unknown command", "put foo bar"},
		{"set missing value", "set foo"},
		{"set extra argument", "set foo bar baz"},
		{"get missing key", "get"},
		{"get extra argument", "get foo bar"},
		{"rm missing key", "rm"},
		{"keys with argument", "keys foo"},
		{"unterminated quote", `set foo "bar`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := command.Parse(tt.line); err == nil {
				t.Errorf("expected error parsing %q, got nil", tt.line)
			}
		})
	}
}

func TestParseEmptyLine(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		if _, err := command.Parse(line); !errors.Is(err, command.ErrEmpty) {
			t.Errorf("expected ErrEmpty parsing %q, got %v", line, err)
		}
	}
}

func TestFromArgs(t *testing.T) {
	got, err := command.FromArgs([]string{"set", "foo", "bar baz"})
	if err != nil {
		t.Fatalf("FromArgs failed: %v", err)
	}

	want := command.Command{Name: "set", Key: "foo", Val: "bar baz"}
	if got != want {
		t.Errorf("FromArgs mismatch: got %+v, want %+v", got, want)
	}

	if _, err := command.FromArgs(nil); !errors.Is(err, command.ErrEmpty) {
		t.Errorf("expected ErrEmpty for no arguments, got %v", err)
	}
}
