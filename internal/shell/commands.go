package shell

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/avrkit/partscope/internal/ctxlog"
	"github.com/avrkit/partscope/internal/disasm"
	"github.com/avrkit/partscope/internal/inspect"
	"github.com/avrkit/partscope/internal/update"
)

// command dispatches one input line. It returns true if the shell is to
// quit.
func (s *Shell) command(ctx context.Context, cmd []string) bool {
	if len(cmd) == 0 {
		return false
	}

	switch strings.ToLower(cmd[0]) {
	case "part", "getavr":
		if len(cmd) < 2 {
			s.errorf("part requires a part name")
			break
		}
		inspect.Describe(s.out, s.reg, cmd[1])

	case "parts", "list":
		substr := ""
		if len(cmd) > 1 {
			substr = cmd[1]
		}
		matches := s.reg.Match(substr)
		if len(matches) == 0 {
			fmt.Fprintln(s.out, "no matching parts")
			break
		}
		fmt.Fprintln(s.out, s.styles.heading.Render("Name        id          description"))
		for _, p := range matches {
			fmt.Fprintf(s.out, "%-11s %-11s %s\n", p.Name, p.ID, p.Desc)
		}

	case "update":
		if len(cmd) < 3 {
			s.errorf("update requires a part name and a memory update specification")
			break
		}
		s.checkUpdate(ctx, cmd[1], cmd[2])

	case "disasm":
		if len(cmd) < 2 {
			s.errorf("disasm requires a file name")
			break
		}
		s.disassemble(ctx, cmd[1])

	case "help", "?":
		fmt.Fprint(s.out, `Commands:
  part <name>           show a part and its memory overview
  parts [substr]        list parts, optionally filtered by substring
  update <part> <spec>  check a [<mem>:<op>:]<file>[:<fmt>] update spec
  disasm <file>         disassemble a raw firmware image
  help                  show this text
  quit                  leave the shell
`)

	case "quit", "exit", "q":
		return true

	default:
		s.errorf("unknown command %q, try \"help\"", cmd[0])
	}

	return false
}

// checkUpdate parses an update specification and verifies that its target
// memory exists on the named part, printing the canonical form and the
// region geometry.
func (s *Shell) checkUpdate(ctx context.Context, partName, spec string) {
	logger := ctxlog.FromContext(ctx)

	p := s.reg.Locate(partName)
	if p == nil {
		fmt.Fprintf(s.out, "No part named %s found\n", partName)
		return
	}

	upd, err := update.Parse(spec)
	if err != nil {
		s.errorf("%v", err)
		return
	}

	mem := p.Region(upd.MemType)
	if mem == nil {
		s.errorf("%s has no memory %q", p.Desc, upd.MemType)
		return
	}

	logger.Debug("Update specification accepted.", "part", p.Name, "spec", upd.String())
	fmt.Fprintf(s.out, "%s\n", upd.String())
	fmt.Fprintf(s.out, "targets %s of %s (%d bytes, %s)\n",
		mem.Desc, p.Desc, mem.Size, upd.Format.Desc())
}

// disassemble prints a listing of a raw binary firmware image.
func (s *Shell) disassemble(ctx context.Context, file string) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(file)
	if err != nil {
		s.errorf("%v", err)
		return
	}

	logger.Debug("Disassembling image.", "file", file, "bytes", len(data))
	for _, ins := range disasm.Disassemble(data) {
		fmt.Fprintln(s.out, ins.Format())
	}
}

func (s *Shell) errorf(format string, a ...any) {
	fmt.Fprintln(s.out, s.styles.err.Render(fmt.Sprintf(format, a...)))
}
