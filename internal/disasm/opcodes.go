package disasm

// operandKind selects how one collected mask letter is rendered.
type operandKind int

const (
	opRegD5     operandKind = iota // d, 5 bits, r0..r31
	opRegR5                        // r, 5 bits
	opRegD4                        // d, 4 bits, upper half r16..r31
	opRegR4                        // r, 4 bits, upper half
	opRegD3                        // d, 3 bits, r16..r23
	opRegR3                        // r, 3 bits, r16..r23
	opRegPair                      // d, 2 bits, word pair r24/r26/r28/r30
	opRegD5Word                    // d, 4 bits, movw destination pair
	opRegR5Word                    // r, 4 bits, movw source pair
	opImm                          // K, immediate constant
	opIO                           // A, I/O address
	opBit                          // b, bit number
	opSreg                         // s, SREG bit number
	opRel7                         // k, 7-bit signed branch offset
	opRel12                        // k, 12-bit signed rjmp/rcall offset
	opAbs22                        // k, 22-bit word address (jmp/call)
	opAbs16                        // k, 16-bit data address (lds/sts)
	opDispY                        // q, Y+q displacement
	opDispZ                        // q, Z+q displacement
	opLit                          // fixed text, e.g. the X+ pointer mode
)

// operand is one rendered argument of an instruction.
type operand struct {
	kind   operandKind
	letter byte
	lit    string
}

func reg(kind operandKind, letter byte) operand { return operand{kind: kind, letter: letter} }
func lit(text string) operand                   { return operand{kind: opLit, lit: text} }

// opcode couples a mnemonic with its bit mask and operand layout.
type opcode struct {
	mnemonic string
	mask     string
	operands []operand
}

// opcodes lists the AVR instruction set in the order the original
// disassembler registers it. Aliases whose masks are identical to another
// entry (brlo/brsh, sbr) are left to their canonical spellings, and the
// forms implied by another instruction (clr, lsl, rol, tst) are covered by
// the instruction that implies them.
var opcodes = []opcode{
	{"adc", "0001 11rd  dddd rrrr", []operand{reg(opRegD5, 'd'), reg(opRegR5, 'r')}},
	{"add", "0000 11rd  dddd rrrr", []operand{reg(opRegD5, 'd'), reg(opRegR5, 'r')}},
	{"adiw", "1001 0110  KKdd KKKK", []operand{reg(opRegPair, 'd'), reg(opImm, 'K')}},
	{"and", "0010 00rd  dddd rrrr", []operand{reg(opRegD5, 'd'), reg(opRegR5, 'r')}},
	{"andi", "0111 KKKK  dddd KKKK", []operand{reg(opRegD4, 'd'), reg(opImm, 'K')}},
	{"asr", "1001 010d  dddd 0101", []operand{reg(opRegD5, 'd')}},
	{"bclr", "1001 0100  1sss 1000", []operand{reg(opSreg, 's')}},
	{"bld", "1111 100d  dddd 0bbb", []operand{reg(opRegD5, 'd'), reg(opBit, 'b')}},
	{"brbc", "1111 01kk  kkkk ksss", []operand{reg(opSreg, 's'), reg(opRel7, 'k')}},
	{"brbs", "1111 00kk  kkkk ksss", []operand{reg(opSreg, 's'), reg(opRel7, 'k')}},
	{"brcc", "1111 01kk  kkkk k000", []operand{reg(opRel7, 'k')}},
	{"brcs", "1111 00kk  kkkk k000", []operand{reg(opRel7, 'k')}},
	{"break", "1001 0101  1001 1000", nil},
	{"breq", "1111 00kk  kkkk k001", []operand{reg(opRel7, 'k')}},
	{"brge", "1111 01kk  kkkk k100", []operand{reg(opRel7, 'k')}},
	{"brhc", "1111 01kk  kkkk k101", []operand{reg(opRel7, 'k')}},
	{"brhs", "1111 00kk  kkkk k101", []operand{reg(opRel7, 'k')}},
	{"brid", "1111 01kk  kkkk k111", []operand{reg(opRel7, 'k')}},
	{"brie", "1111 00kk  kkkk k111", []operand{reg(opRel7, 'k')}},
	{"brlt", "1111 00kk  kkkk k100", []operand{reg(opRel7, 'k')}},
	{"brmi", "1111 00kk  kkkk k010", []operand{reg(opRel7, 'k')}},
	{"brne", "1111 01kk  kkkk k001", []operand{reg(opRel7, 'k')}},
	{"brpl", "1111 01kk  kkkk k010", []operand{reg(opRel7, 'k')}},
	{"brtc", "1111 01kk  kkkk k110", []operand{reg(opRel7, 'k')}},
	{"brts", "1111 00kk  kkkk k110", []operand{reg(opRel7, 'k')}},
	{"brvc", "1111 01kk  kkkk k011", []operand{reg(opRel7, 'k')}},
	{"brvs", "1111 00kk  kkkk k011", []operand{reg(opRel7, 'k')}},
	{"bset", "1001 0100  0sss 1000", []operand{reg(opSreg, 's')}},
	{"bst", "1111 101d  dddd 0bbb", []operand{reg(opRegD5, 'd'), reg(opBit, 'b')}},
	{"call", "1001 010k  kkkk 111k    kkkk kkkk  kkkk kkkk", []operand{reg(opAbs22, 'k')}},
	{"cbi", "1001 1000  AAAA Abbb", []operand{reg(opIO, 'A'), reg(opBit, 'b')}},
	{"clc", "1001 0100  1000 1000", nil},
	{"clh", "1001 0100  1101 1000", nil},
	{"cli", "1001 0100  1111 1000", nil},
	{"cln", "1001 0100  1010 1000", nil},
	{"cls", "1001 0100  1100 1000", nil},
	{"clt", "1001 0100  1110 1000", nil},
	{"clv", "1001 0100  1011 1000", nil},
	{"clz", "1001 0100  1001 1000", nil},
	{"com", "1001 010d  dddd 0000", []operand{reg(opRegD5, 'd')}},
	{"cp", "0001 01rd  dddd rrrr", []operand{reg(opRegD5, 'd'), reg(opRegR5, 'r')}},
	{"cpc", "0000 01rd  dddd rrrr", []operand{reg(opRegD5, 'd'), reg(opRegR5, 'r')}},
	{"cpi", "0011 KKKK  dddd KKKK", []operand{reg(opRegD4, 'd'), reg(opImm, 'K')}},
	{"cpse", "0001 00rd  dddd rrrr", []operand{reg(opRegD5, 'd'), reg(opRegR5, 'r')}},
	{"dec", "1001 010d  dddd 1010", []operand{reg(opRegD5, 'd')}},
	{"eicall", "1001 0101  0001 1001", nil},
	{"eijmp", "1001 0100  0001 1001", nil},
	{"elpm", "1001 0101  1101 1000", nil},
	{"elpm", "1001 000d  dddd 0110", []operand{reg(opRegD5, 'd'), lit("Z")}},
	{"elpm", "1001 000d  dddd 0111", []operand{reg(opRegD5, 'd'), lit("Z+")}},
	{"eor", "0010 01rd  dddd rrrr", []operand{reg(opRegD5, 'd'), reg(opRegR5, 'r')}},
	{"fmul", "0000 0011  0ddd 1rrr", []operand{reg(opRegD3, 'd'), reg(opRegR3, 'r')}},
	{"fmuls", "0000 0011  1ddd 0rrr", []operand{reg(opRegD3, 'd'), reg(opRegR3, 'r')}},
	{"fmulsu", "0000 0011  1ddd 1rrr", []operand{reg(opRegD3, 'd'), reg(opRegR3, 'r')}},
	{"icall", "1001 0101  0000 1001", nil},
	{"ijmp", "1001 0100  0000 1001", nil},
	{"in", "1011 0AAd  dddd AAAA", []operand{reg(opRegD5, 'd'), reg(opIO, 'A')}},
	{"inc", "1001 010d  dddd 0011", []operand{reg(opRegD5, 'd')}},
	{"jmp", "1001 010k  kkkk 110k    kkkk kkkk  kkkk kkkk", []operand{reg(opAbs22, 'k')}},
	{"ld", "1001 000d  dddd 1100", []operand{reg(opRegD5, 'd'), lit("X")}},
	{"ld", "1001 000d  dddd 1101", []operand{reg(opRegD5, 'd'), lit("X+")}},
	{"ld", "1001 000d  dddd 1110", []operand{reg(opRegD5, 'd'), lit("-X")}},
	{"ld", "1000 000d  dddd 1000", []operand{reg(opRegD5, 'd'), lit("Y")}},
	{"ld", "1001 000d  dddd 1001", []operand{reg(opRegD5, 'd'), lit("Y+")}},
	{"ld", "1001 000d  dddd 1010", []operand{reg(opRegD5, 'd'), lit("-Y")}},
	{"ldd", "10q0 qq0d  dddd 1qqq", []operand{reg(opRegD5, 'd'), reg(opDispY, 'q')}},
	{"ld", "1000 000d  dddd 0000", []operand{reg(opRegD5, 'd'), lit("Z")}},
	{"ld", "1001 000d  dddd 0001", []operand{reg(opRegD5, 'd'), lit("Z+")}},
	{"ld", "1001 000d  dddd 0010", []operand{reg(opRegD5, 'd'), lit("-Z")}},
	{"ldd", "10q0 qq0d  dddd 0qqq", []operand{reg(opRegD5, 'd'), reg(opDispZ, 'q')}},
	{"ldi", "1110 KKKK  dddd KKKK", []operand{reg(opRegD4, 'd'), reg(opImm, 'K')}},
	{"lds", "1001 000d  dddd 0000    kkkk kkkk  kkkk kkkk", []operand{reg(opRegD5, 'd'), reg(opAbs16, 'k')}},
	{"lpm", "1001 0101  1100 1000", nil},
	{"lpm", "1001 000d  dddd 0100", []operand{reg(opRegD5, 'd'), lit("Z")}},
	{"lpm", "1001 000d  dddd 0101", []operand{reg(opRegD5, 'd'), lit("Z+")}},
	{"lsr", "1001 010d  dddd 0110", []operand{reg(opRegD5, 'd')}},
	{"mov", "0010 11rd  dddd rrrr", []operand{reg(opRegD5, 'd'), reg(opRegR5, 'r')}},
	{"movw", "0000 0001  dddd rrrr", []operand{reg(opRegD5Word, 'd'), reg(opRegR5Word, 'r')}},
	{"mul", "1001 11rd  dddd rrrr", []operand{reg(opRegD5, 'd'), reg(opRegR5, 'r')}},
	{"muls", "0000 0010  dddd rrrr", []operand{reg(opRegD4, 'd'), reg(opRegR4, 'r')}},
	{"mulsu", "0000 0011  0ddd 0rrr", []operand{reg(opRegD3, 'd'), reg(opRegR3, 'r')}},
	{"neg", "1001 010d  dddd 0001", []operand{reg(opRegD5, 'd')}},
	{"nop", "0000 0000  0000 0000", nil},
	{"or", "0010 10rd  dddd rrrr", []operand{reg(opRegD5, 'd'), reg(opRegR5, 'r')}},
	{"ori", "0110 KKKK  dddd KKKK", []operand{reg(opRegD4, 'd'), reg(opImm, 'K')}},
	{"out", "1011 1AAr  rrrr AAAA", []operand{reg(opIO, 'A'), reg(opRegR5, 'r')}},
	{"pop", "1001 000d  dddd 1111", []operand{reg(opRegD5, 'd')}},
	{"push", "1001 001d  dddd 1111", []operand{reg(opRegD5, 'd')}},
	{"rcall", "1101 kkkk  kkkk kkkk", []operand{reg(opRel12, 'k')}},
	{"ret", "1001 0101  0000 1000", nil},
	{"reti", "1001 0101  0001 1000", nil},
	{"rjmp", "1100 kkkk  kkkk kkkk", []operand{reg(opRel12, 'k')}},
	{"ror", "1001 010d  dddd 0111", []operand{reg(opRegD5, 'd')}},
	{"sbc", "0000 10rd  dddd rrrr", []operand{reg(opRegD5, 'd'), reg(opRegR5, 'r')}},
	{"sbci", "0100 KKKK  dddd KKKK", []operand{reg(opRegD4, 'd'), reg(opImm, 'K')}},
	{"sbi", "1001 1010  AAAA Abbb", []operand{reg(opIO, 'A'), reg(opBit, 'b')}},
	{"sbic", "1001 1001  AAAA Abbb", []operand{reg(opIO, 'A'), reg(opBit, 'b')}},
	{"sbis", "1001 1011  AAAA Abbb", []operand{reg(opIO, 'A'), reg(opBit, 'b')}},
	{"sbiw", "1001 0111  KKdd KKKK", []operand{reg(opRegPair, 'd'), reg(opImm, 'K')}},
	{"sbrc", "1111 110r  rrrr 0bbb", []operand{reg(opRegR5, 'r'), reg(opBit, 'b')}},
	{"sbrs", "1111 111r  rrrr 0bbb", []operand{reg(opRegR5, 'r'), reg(opBit, 'b')}},
	{"sec", "1001 0100  0000 1000", nil},
	{"seh", "1001 0100  0101 1000", nil},
	{"sei", "1001 0100  0111 1000", nil},
	{"sen", "1001 0100  0010 1000", nil},
	{"ser", "1110 1111  dddd 1111", []operand{reg(opRegD4, 'd')}},
	{"ses", "1001 0100  0100 1000", nil},
	{"set", "1001 0100  0110 1000", nil},
	{"sev", "1001 0100  0011 1000", nil},
	{"sez", "1001 0100  0001 1000", nil},
	{"sleep", "1001 0101  1000 1000", nil},
	{"spm", "1001 0101  1110 1000", nil},
	{"st", "1001 001r  rrrr 1100", []operand{lit("X"), reg(opRegR5, 'r')}},
	{"st", "1001 001r  rrrr 1101", []operand{lit("X+"), reg(opRegR5, 'r')}},
	{"st", "1001 001r  rrrr 1110", []operand{lit("-X"), reg(opRegR5, 'r')}},
	{"st", "1000 001r  rrrr 1000", []operand{lit("Y"), reg(opRegR5, 'r')}},
	{"st", "1001 001r  rrrr 1001", []operand{lit("Y+"), reg(opRegR5, 'r')}},
	{"st", "1001 001r  rrrr 1010", []operand{lit("-Y"), reg(opRegR5, 'r')}},
	{"std", "10q0 qq1r  rrrr 1qqq", []operand{reg(opDispY, 'q'), reg(opRegR5, 'r')}},
	{"st", "1000 001r  rrrr 0000", []operand{lit("Z"), reg(opRegR5, 'r')}},
	{"st", "1001 001r  rrrr 0001", []operand{lit("Z+"), reg(opRegR5, 'r')}},
	{"st", "1001 001r  rrrr 0010", []operand{lit("-Z"), reg(opRegR5, 'r')}},
	{"std", "10q0 qq1r  rrrr 0qqq", []operand{reg(opDispZ, 'q'), reg(opRegR5, 'r')}},
	{"sts", "1001 001d  dddd 0000    kkkk kkkk  kkkk kkkk", []operand{reg(opAbs16, 'k'), reg(opRegD5, 'd')}},
	{"sub", "0001 10rd  dddd rrrr", []operand{reg(opRegD5, 'd'), reg(opRegR5, 'r')}},
	{"subi", "0101 KKKK  dddd KKKK", []operand{reg(opRegD4, 'd'), reg(opImm, 'K')}},
	{"swap", "1001 010d  dddd 0010", []operand{reg(opRegD5, 'd')}},
	{"wdr", "1001 0101  1010 1000", nil},
}
