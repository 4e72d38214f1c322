package disasm

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Instruction is one decoded entry of a firmware image.
type Instruction struct {
	Addr  int
	Bytes []byte
	Text  string
}

// Format renders the instruction the way the listing prints it: address,
// raw bytes, padding to a fixed mnemonic column.
func (ins Instruction) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%4x:   ", ins.Addr)
	for _, by := range ins.Bytes {
		fmt.Fprintf(&b, "%02x ", by)
	}
	b.WriteString(" ")
	for i := len(ins.Bytes); i < 5; i++ {
		b.WriteString("   ")
	}
	b.WriteString(ins.Text)
	return b.String()
}

// compiled is an opcode with its mask flattened to one character per bit.
type compiled struct {
	op       opcode
	bits     string // mask with spacing removed, 16 or 32 chars
	byteLen  int
	fixedLen int // number of 0/1 identification bits
}

var (
	compileOnce sync.Once
	compiledOps []compiled
)

// table compiles and orders the opcode list once. More specific masks come
// first so that fully fixed encodings beat the operand patterns they are a
// special case of.
func table() []compiled {
	compileOnce.Do(func() {
		compiledOps = make([]compiled, 0, len(opcodes))
		for _, op := range opcodes {
			bits := strings.Map(func(r rune) rune {
				if r == ' ' {
					return -1
				}
				return r
			}, op.mask)
			c := compiled{op: op, bits: bits, byteLen: len(bits) / 8}
			for _, r := range bits {
				if r == '0' || r == '1' {
					c.fixedLen++
				}
			}
			compiledOps = append(compiledOps, c)
		}
		sort.SliceStable(compiledOps, func(i, j int) bool {
			return compiledOps[i].fixedLen > compiledOps[j].fixedLen
		})
	})
	return compiledOps
}

// match checks one candidate against the image at pos. Words are stored
// little-endian, so stream bit i lives in byte (i/8)^1. Operand bits are
// collected most significant first in mask order.
func match(c compiled, data []byte, pos int) (map[byte]int, bool) {
	if pos+c.byteLen > len(data) {
		return nil, false
	}
	fields := make(map[byte]int)
	for i := 0; i < len(c.bits); i++ {
		b := data[pos+((i/8)^1)]
		bit := int(b>>(7-i%8)) & 1
		switch m := c.bits[i]; m {
		case '0':
			if bit != 0 {
				return nil, false
			}
		case '1':
			if bit != 1 {
				return nil, false
			}
		default:
			fields[m] = fields[m]<<1 | bit
		}
	}
	return fields, true
}

// Disassemble decodes the whole image. Words that match no opcode are kept
// as .word data so the listing stays aligned with the image.
func Disassemble(data []byte) []Instruction {
	var out []Instruction
	for pos := 0; pos < len(data); {
		if len(data)-pos < 2 {
			out = append(out, Instruction{
				Addr:  pos,
				Bytes: data[pos:],
				Text:  fmt.Sprintf(".byte 0x%02x", data[pos]),
			})
			break
		}

		ins, n := decodeAt(data, pos)
		out = append(out, ins)
		pos += n
	}
	return out
}

func decodeAt(data []byte, pos int) (Instruction, int) {
	for _, c := range table() {
		fields, ok := match(c, data, pos)
		if !ok {
			continue
		}
		return Instruction{
			Addr:  pos,
			Bytes: data[pos : pos+c.byteLen],
			Text:  render(c.op, fields, pos),
		}, c.byteLen
	}
	return Instruction{
		Addr:  pos,
		Bytes: data[pos : pos+2],
		Text:  fmt.Sprintf(".word 0x%02x%02x", data[pos+1], data[pos]),
	}, 2
}

func render(op opcode, fields map[byte]int, pos int) string {
	if len(op.operands) == 0 {
		return op.mnemonic
	}
	args := make([]string, len(op.operands))
	for i, o := range op.operands {
		args[i] = renderOperand(o, fields, pos)
	}
	return op.mnemonic + " " + strings.Join(args, ", ")
}

func renderOperand(o operand, fields map[byte]int, pos int) string {
	v := fields[o.letter]
	switch o.kind {
	case opRegD5, opRegR5:
		return fmt.Sprintf("r%d", v)
	case opRegD4, opRegR4, opRegD3, opRegR3:
		return fmt.Sprintf("r%d", 16+v)
	case opRegPair:
		return fmt.Sprintf("r%d", 24+2*v)
	case opRegD5Word, opRegR5Word:
		return fmt.Sprintf("r%d", 2*v)
	case opImm, opIO:
		return fmt.Sprintf("0x%02x", v)
	case opBit, opSreg:
		return fmt.Sprintf("%d", v)
	case opRel7:
		if v&0x40 != 0 {
			v -= 0x80
		}
		return fmt.Sprintf("0x%x", pos+2+2*v)
	case opRel12:
		if v&0x800 != 0 {
			v -= 0x1000
		}
		return fmt.Sprintf("0x%x", pos+2+2*v)
	case opAbs22:
		return fmt.Sprintf("0x%x", 2*v)
	case opAbs16:
		return fmt.Sprintf("0x%04x", v)
	case opDispY:
		return fmt.Sprintf("Y+%d", v)
	case opDispZ:
		return fmt.Sprintf("Z+%d", v)
	case opLit:
		return o.lit
	}
	return "?"
}
