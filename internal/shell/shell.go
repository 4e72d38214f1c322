package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/avrkit/partscope/internal/ctxlog"
	"github.com/avrkit/partscope/internal/registry"
)

// Shell is an interactive command loop over a populated registry.
type Shell struct {
	reg    *registry.Registry
	in     io.Reader
	out    io.Writer
	styles styles
}

// New creates a Shell reading commands from in and writing to out.
func New(reg *registry.Registry, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		reg:    reg,
		in:     in,
		out:    out,
		styles: newStyles(),
	}
}

// Run reads commands until quit or end of input. Command errors are
// printed and the loop continues; only a read failure ends the session
// with an error.
func (s *Shell) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Interactive shell started.", "parts", s.reg.Len())

	fmt.Fprintf(s.out, "%d part definitions loaded from %s\n", s.reg.Len(), s.reg.ConfigFile())
	fmt.Fprintln(s.out, `Type "help" for a list of commands.`)

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.styles.prompt.Render("partscope>")+" ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}
		if s.command(ctx, strings.Fields(scanner.Text())) {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
