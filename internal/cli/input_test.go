package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Password: ")
	if err != nil {
		t.Fatal(err)
	}
	if string(pw) != "s3cret" {
		t.Fatalf("got %q", pw)
	}
	if !strings.Contains(out.String(), "Password: ") {
		t.Fatalf("label not printed: %q", out.String())
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out, "Password: ")
	if err == nil {
		t.Fatal("expected error")
	}
}

// scriptedInput feeds canned lines to the commands in place of the terminal.
type scriptedInput struct {
	lines   []string
	history []string
}

func (s *scriptedInput) next() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedInput) Prompt(string) (string, error) { return s.next() }

func (s *scriptedInput) PromptWithSuggestion(string, string, int) (string, error) {
	return s.next()
}

func (s *scriptedInput) AppendHistory(item string) {
	s.history = append(s.history, item)
}
