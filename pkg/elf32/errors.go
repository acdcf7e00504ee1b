// Package elf32 is a byte-oriented, endian-aware view over a 32-bit ELF
// image. It locates sections, walks the symbol table, and exposes global
// function entries, without depending on the MicroBlaze decoder.
package elf32

import "errors"

var (
	// ErrInvalidPath is returned when no file exists at the path to load.
	ErrInvalidPath = errors.New("invalid path")
	// ErrIO is returned for any other failure to open or read the file.
	ErrIO = errors.New("I/O failure reading ELF file")
	// ErrNotELF32 is returned when the magic or class check fails.
	ErrNotELF32 = errors.New("not a 32-bit ELF image")
	// ErrMissingSection is returned when a required section is absent.
	ErrMissingSection = errors.New("required section missing")
	// ErrOutOfRange is returned when an index or offset falls outside
	// known bounds.
	ErrOutOfRange = errors.New("out of range")
)
