package flow

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"chatbot/internal/domain"
)

// LinePrompter reads one line of input per prompt.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt writes label without a newline and returns the next line with its
// line ending stripped. A final line without a newline is returned as-is;
// io.EOF is only reported when no input remains at all.
func (p *LinePrompter) Prompt(label string) (string, error) {
	if label != "" {
		if _, err := fmt.Fprint(p.out, label); err != nil {
			return "", err
		}
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var _ domain.Prompter = (*LinePrompter)(nil)
