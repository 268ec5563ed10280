package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

// ErrQuit is returned by a CommandHandler to end the input loop.
var ErrQuit = errors.New("quit")

// CommandHandler is called for every non-empty input line. A non-empty reply
// is written back to the output.
type CommandHandler func(command string) (string, error)

// Run reads commands line by line until in is exhausted, ctx is cancelled or
// the handler returns ErrQuit. Handler errors other than ErrQuit are reported
// and the loop continues.
func Run(ctx context.Context, in io.Reader, out io.Writer, handler CommandHandler) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Println("[INFO] console stopped")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
				default:
				}
				return nil
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}
			reply, err := handler(text)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				log.Printf("[WARN] command %q: %v", text, err)
				reply = "error: " + err.Error()
			}
			if reply != "" {
				fmt.Fprintln(out, reply)
			}
		}
	}
}
