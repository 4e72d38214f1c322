// Package update parses memory update specifications of the form
// [<memory>:<op>:]<file>[:<format>], as accepted by avrdude's -U option.
package update

import (
	"fmt"
	"strings"
)

// Op is the I/O direction of an update.
type Op int

const (
	OpRead Op = iota
	OpWrite
	OpVerify
)

// String returns the single-character spelling of the op.
func (o Op) String() string {
	switch o {
	case OpRead:
		return "r"
	case OpWrite:
		return "w"
	case OpVerify:
		return "v"
	}
	return "?"
}

// Format identifies the file format of an update's data file.
type Format rune

const (
	FmtAuto      Format = 'a'
	FmtIntelHex  Format = 'i'
	FmtSRec      Format = 's'
	FmtRawBin    Format = 'r'
	FmtELF       Format = 'e'
	FmtImmediate Format = 'm'
	FmtDecimal   Format = 'd'
	FmtHex       Format = 'h'
	FmtOctal     Format = 'o'
	FmtBinary    Format = 'b'
)

// knownFormats is the accepted format character set, in the order used for
// error messages.
const knownFormats = "aisremdhob"

// Desc returns a human-readable name for the format.
func (f Format) Desc() string {
	switch f {
	case FmtAuto:
		return "auto detect"
	case FmtIntelHex:
		return "Intel Hex"
	case FmtSRec:
		return "Motorola S-Record"
	case FmtRawBin:
		return "raw binary"
	case FmtELF:
		return "ELF"
	case FmtImmediate:
		return "immediate values"
	case FmtDecimal:
		return "decimal list"
	case FmtHex:
		return "hexadecimal list"
	case FmtOctal:
		return "octal list"
	case FmtBinary:
		return "binary list"
	}
	return "unknown"
}

// Update is one parsed memory update specification.
type Update struct {
	MemType  string
	Op       Op
	Filename string
	Format   Format
}

// Parse parses a spec string. With no memory prefix the operation defaults
// to writing flash; with no format suffix the format defaults to raw
// binary for reads and auto detection otherwise.
//
// The memory prefix is only recognised as <memory>:<single char>:, so a
// Windows drive letter such as c:/some/file.hex is read as part of the
// filename, not as an op separator.
func Parse(s string) (*Update, error) {
	upd := &Update{
		MemType:  "flash",
		Op:       OpWrite,
		Filename: s,
	}

	if i := strings.IndexByte(s, ':'); i >= 0 && i+2 < len(s) && s[i+2] == ':' {
		switch s[i+1] {
		case 'r':
			upd.Op = OpRead
		case 'w':
			upd.Op = OpWrite
		case 'v':
			upd.Op = OpVerify
		default:
			return nil, fmt.Errorf("invalid I/O mode :%c: in %q; known modes are :r:, :w: and :v:", s[i+1], s)
		}
		upd.MemType = s[:i]
		upd.Filename = s[i+3:]
	}

	if upd.Op == OpRead {
		upd.Format = FmtRawBin
	} else {
		upd.Format = FmtAuto
	}

	// The trailing characters are a format suffix only when the
	// penultimate character is a colon.
	fn := upd.Filename
	if len(fn) > 2 && fn[len(fn)-2] == ':' {
		f := Format(fn[len(fn)-1])
		if !strings.ContainsRune(knownFormats, rune(f)) {
			return nil, fmt.Errorf("invalid file format :%c in %q; known formats are :%s",
				rune(f), s, strings.Join(strings.Split(knownFormats, ""), " :"))
		}
		upd.Format = f
		upd.Filename = fn[:len(fn)-2]
	}

	if upd.Filename == "" {
		return nil, fmt.Errorf("missing filename in %q", s)
	}

	return upd, nil
}

// String renders the canonical -U form of the update.
func (u *Update) String() string {
	return fmt.Sprintf("-U %s:%s:%s:%c", u.MemType, u.Op, u.Filename, rune(u.Format))
}
