package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	// In and Out are swapped by tests.
	In  io.Reader = os.Stdin
	Out io.Writer = os.Stdout

	reader     *bufio.Reader
	readerFrom io.Reader
)

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func input() *bufio.Reader {
	if reader == nil || readerFrom != In {
		reader = bufio.NewReader(In)
		readerFrom = In
	}
	return reader
}

func readLine() (string, error) {
	line, err := input().ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PromptString prompts user for a string input
func PromptString(label string) (string, error) {
	fmt.Fprint(Out, label)
	line, err := readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptPassword prompts user for a secret such as an access token (hidden input)
func PromptPassword(label string) (string, error) {
	fmt.Fprint(Out, label)

	f, ok := In.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		line, err := readLine()
		return strings.TrimSpace(line), err
	}

	secret, err := term.ReadPassword(int(f.Fd()))
	if err != nil {
		return "", err
	}

	fmt.Fprintln(Out) // New line after hidden input

	return strings.TrimSpace(string(secret)), nil
}

// PromptConfirm prompts user for yes/no confirmation
func PromptConfirm(label string) (bool, error) {
	fmt.Fprint(Out, label+" (y/n) ")
	line, err := readLine()
	if err != nil {
		return false, err
	}

	response := strings.TrimSpace(strings.ToLower(line))
	return response == "y" || response == "yes", nil
}

// PromptSelect prompts user to select from options
func PromptSelect(label string, options []string) (int, error) {
	fmt.Fprintln(Out, label)
	for i, opt := range options {
		fmt.Fprintf(Out, "%d) %s\n", i+1, opt)
	}

	fmt.Fprint(Out, "Select option: ")
	line, err := readLine()
	if err != nil {
		return -1, err
	}

	var selection int
	if _, err := fmt.Sscanf(strings.TrimSpace(line), "%d", &selection); err != nil {
		return -1, err
	}

	if selection < 1 || selection > len(options) {
		return -1, fmt.Errorf("invalid selection")
	}

	return selection - 1, nil
}

// PromptMultilineString prompts user for multi-line input, ending at the
// first empty line or after maxLines lines.
func PromptMultilineString(label string, maxLines int) (string, error) {
	fmt.Fprintf(Out, "%s (finish with an empty line):\n", label)

	var lines []string
	for i := 0; i < maxLines; i++ {
		line, err := readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}
