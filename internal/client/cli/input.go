package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetTextDefault prompts like GetSimpleText but shows the current value and
// keeps it when the user enters an empty line.
func GetTextDefault(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	shown := current
	if shown == "" {
		shown = "empty"
	}
	text, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, shown), w)
	if err != nil {
		return "", err
	}
	if text == "" {
		return current, nil
	}
	return text, nil
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// Confirm asks a yes/no question and returns true only on an explicit
// "y" or "yes" (case-insensitive).
func Confirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	answer, err := GetSimpleText(reader, prompt+" (y/N)", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// GetChoice prompts until the user enters one of the allowed values or an
// empty line (which keeps current). Matching is case-insensitive; the
// canonical (allowed) spelling is returned.
func GetChoice(reader *bufio.Reader, prompt string, allowed []string, current string, w io.Writer) (string, error) {
	full := fmt.Sprintf("%s (%s)", prompt, strings.Join(allowed, "/"))
	for {
		text, err := GetTextDefault(reader, full, current, w)
		if err != nil {
			return "", err
		}
		for _, a := range allowed {
			if strings.EqualFold(text, a) {
				return a, nil
			}
		}
		fmt.Fprintf(w, "Please enter one of: %s\n", strings.Join(allowed, ", "))
	}
}
