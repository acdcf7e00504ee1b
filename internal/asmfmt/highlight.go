// Package asmfmt renders decoded MicroBlaze instructions as
// syntax-highlighted text for terminal output.
package asmfmt

import (
	"regexp"
	"strings"

	"github.com/fatih/color"

	"github.com/schaban/mbdisasm/pkg/mbdecoder"
)

// Disassembly syntax highlighting colors
var (
	mnemonicColor = color.New(color.FgMagenta, color.Bold)
	registerColor = color.New(color.FgCyan)
	numberColor   = color.New(color.FgYellow)
	addressColor  = color.New(color.FgHiBlack)
)

var (
	registerPattern = regexp.MustCompile(`\br\d{1,2}\b`)
	numberPattern   = regexp.MustCompile(`-?\b(?:0[xX][0-9a-fA-F]+|\d+)\b`)
)

// token is a syntax-highlighted run within a rendered instruction string.
type token struct {
	text  string
	color *color.Color
	start int
	end   int
}

// Highlight colors one decoded Record's mnemonic, registers, and immediate.
// The address/code prefix from Record.Disassembly is colored separately so
// it doesn't compete with operand highlighting.
func Highlight(r mbdecoder.Record) string {
	prefix := addressColor.Sprintf("%08X: %08X   ", r.Addr, r.Code)
	return prefix + highlightOperands(r.String())
}

// highlightOperands colors the mnemonic/operand portion of a rendered
// instruction string ("mnemonic\toperands"), adapting
// syntax_highlight.go's token-collect-then-stitch approach to a much
// smaller grammar than full C source.
func highlightOperands(text string) string {
	if text == "" {
		return text
	}

	var tokens []token

	tab := strings.IndexByte(text, '\t')
	mnemonicEnd := len(text)
	if tab >= 0 {
		mnemonicEnd = tab
	}
	if mnemonicEnd > 0 {
		tokens = append(tokens, token{text: text[:mnemonicEnd], color: mnemonicColor, start: 0, end: mnemonicEnd})
	}

	for _, m := range registerPattern.FindAllStringIndex(text, -1) {
		if m[0] >= mnemonicEnd {
			tokens = append(tokens, token{text: text[m[0]:m[1]], color: registerColor, start: m[0], end: m[1]})
		}
	}

	for _, m := range numberPattern.FindAllStringIndex(text, -1) {
		if m[0] >= mnemonicEnd && !overlapsAny(m[0], m[1], tokens) {
			tokens = append(tokens, token{text: text[m[0]:m[1]], color: numberColor, start: m[0], end: m[1]})
		}
	}

	return stitch(text, tokens)
}

func overlapsAny(start, end int, tokens []token) bool {
	for _, t := range tokens {
		if start < t.end && end > t.start {
			return true
		}
	}
	return false
}

func stitch(text string, tokens []token) string {
	if len(tokens) == 0 {
		return text
	}

	for i := 1; i < len(tokens); i++ {
		key := tokens[i]
		j := i - 1
		for j >= 0 && tokens[j].start > key.start {
			tokens[j+1] = tokens[j]
			j--
		}
		tokens[j+1] = key
	}

	var b strings.Builder
	pos := 0
	for _, t := range tokens {
		if t.start > pos {
			b.WriteString(text[pos:t.start])
		}
		b.WriteString(t.color.Sprint(t.text))
		pos = t.end
	}
	if pos < len(text) {
		b.WriteString(text[pos:])
	}
	return b.String()
}
