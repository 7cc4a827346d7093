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

var readPassword = term.ReadPassword

const promptMarker = "> "

// readLine reads one line and strips the line ending. A final line without
// a newline is returned as is; io.EOF is reported only when nothing was read.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readBlock collects lines until a blank line or end of input.
func readBlock(reader *bufio.Reader) []string {
	var lines []string
	for {
		line, err := readLine(reader)
		if err != nil || strings.TrimSpace(line) == "" {
			return lines
		}
		lines = append(lines, line)
	}
}

// GetSimpleText shows prompt and returns the next line with surrounding
// whitespace removed.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n%s", prompt, promptMarker); err != nil {
		return "", err
	}
	line, err := readLine(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password from the terminal without echo. Callers wipe
// the returned slice with common.WipeByteArray.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	return pw, err
}

// GetMultiline reads a block of text, used for profile bios.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s (blank line to finish)\n", prompt); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(readBlock(reader), "\n")), nil
}

// GetAssignments reads field=value lines until a blank line. Lines starting
// with '#' are skipped; parsing is left to parseProfileUpdate.
func GetAssignments(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	if _, err := fmt.Fprintf(w, "%s (field=value per line, blank line to finish)\n", prompt); err != nil {
		return nil, err
	}

	out := []string{}
	for _, line := range readBlock(reader) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}
