// Package console implements the bounded-wait interactive prompt.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Prompt asks yes/no questions on the console with a bounded wait.
type Prompt struct {
	in  io.Reader
	out io.Writer
}

// New constructs a Prompt reading answers from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: in, out: out}
}

// Ask writes the question and waits up to timeout for an answer line.
// "1" answers yes; "0", no answer, or a canceled context answer no. Any
// other input is reported and treated as no.
func (p *Prompt) Ask(ctx context.Context, question string, timeout time.Duration) bool {
	fmt.Fprintf(p.out, "%s (1 for Yes / 0 for No): ", question)

	answers := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(p.in)
		if scanner.Scan() {
			answers <- strings.TrimSpace(scanner.Text())
		}
	}()

	select {
	case <-ctx.Done():
		return false
	case <-time.After(timeout):
		fmt.Fprintln(p.out, "\nNo answer received, defaulting to No.")
		return false
	case answer := <-answers:
		switch answer {
		case "1":
			return true
		case "0":
			return false
		default:
			fmt.Fprintf(p.out, "Invalid input %q, defaulting to No.\n", answer)
			return false
		}
	}
}
