// Package disasm decodes AVR machine code from a raw firmware image.
//
// Opcodes are described as bit mask strings ("0001 11rd  dddd rrrr") in
// which 0 and 1 are identification bits and letters collect operand bits.
// Matching tries masks in order of decreasing specificity (number of fixed
// bits) so that special cases like ser win over the ldi pattern they
// overlap with. Words are stored little-endian in the image; unmatched
// words are emitted as .word data and decoding continues at the next word.
package disasm
