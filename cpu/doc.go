// Package cpu implements the LC-3 processor model.
//
// The processor consists of eight 16-bit general-purpose registers (r0-r7),
// a program counter, and a tri-state condition flag set by every
// register-writing instruction. Instructions are 16-bit words whose top four
// bits select one of sixteen opcodes; the remaining fields are decoded by
// the Code accessors. Execution is a plain fetch-decode-execute cycle
// driven by Step, with the trap instructions providing console I/O and the
// only graceful way to halt.
package cpu
