// Package main implements gobf, a byte tape machine.
//
// The machine runs programs written in an eight instruction language over a flat
// tape of byte cells. There is a single data pointer into the tape, and a single
// instruction pointer into the program. Every instruction is one byte:
//
//	>   move the data pointer right
//	<   move the data pointer left
//	+   increment the current cell
//	-   decrement the current cell
//	.   write the current cell to output
//	,   read one byte of input into the current cell
//	[   if the current cell is zero, skip past the matching ]
//	]   return to the matching [
//
// Any other byte in a program source is a comment; such bytes are removed by
// the loader before the machine ever sees the program, so there is no comment
// syntax to speak of.
//
// # Memory
//
// The tape has a fixed number of cells, 4096 unless configured otherwise. All
// cells start at zero. Arithmetic on a cell wraps around modulo 256, and moving
// the data pointer past either end of the tape wraps around to the other end:
// there is no such thing as a memory fault.
//
// # Control Flow
//
// Loops are resolved lazily, there is no compile step. When a [ is entered on
// a non-zero cell, its address is pushed onto a return stack; every ] simply
// pops that stack and jumps back to the [ which then re-tests its cell. When a [
// is entered on a zero cell, the machine scans forward, counting nesting depth,
// to find the matching ]. This rescans skipped loop bodies each time, trading
// speed for the absence of any preprocessing.
//
// The consequence is that malformed programs are only detected when the
// malformed part is reached: a ] with nothing on the return stack, or a skip
// that runs off the end of the program. A program with an unclosed [ that is
// never entered on a zero cell may run to completion. The -check flag may be
// used to find such problems without running the program.
//
// # Input and Output
//
// Input and output are raw byte streams. Output is buffered, but is flushed
// before every read and whenever the machine halts. What happens when a read
// finds no more input is configurable; by default it is an error, since the
// cell would otherwise be left holding a value that the program never saw.
package main
