// Package asciiframe draws ASCII diagrams of contiguous bit fields within
// a fixed-width binary frame, used to visualize decoded instruction word
// layouts.
package asciiframe

import (
	"fmt"
	"strings"
)

type Field struct {
	// Name of the field
	Name string

	// Units within the frame the field begins from
	Begin int

	// Field width
	Width int
}

// TopUnit is the last unit within the frame used by this field.
func (f *Field) TopUnit() int {
	return f.PastTopUnit() - 1
}

// PastTopUnit is the first unit within the frame used by the next field.
func (f *Field) PastTopUnit() int {
	return f.Begin + f.Width
}

type UnitLayout uint

const (
	// Units increase left to right
	LeftToRight UnitLayout = iota
	// Units increase right to left
	RightToLeft
)

type frame struct {
	fields     []Field
	frameWidth int
	unit       string
	leftpad    int
	layout     UnitLayout
}

func (f *frame) TopUnit() int {
	return f.frameWidth - 1
}

func writeRow(text string, textDecorationExtraLength int, filler string, length int, builder *strings.Builder) {
	if len(filler) > 1 {
		panic(fmt.Errorf("filler '%v' must be one character long", filler))
	}

	if len(text) > length {
		panic(fmt.Errorf("text '%v' is %v chars long but target length is only %v chars", text, len(text), length))
	}

	leftpadLength := (length - len(text) - textDecorationExtraLength) / 2
	rightpadLength := leftpadLength
	rightpadLength += length - leftpadLength - len(text) - textDecorationExtraLength - rightpadLength

	for i := 0; i < leftpadLength; i++ {
		builder.WriteString(filler)
	}
	builder.WriteString(text)
	for i := 0; i < rightpadLength; i++ {
		builder.WriteString(filler)
	}
}

func maxInt(values []int) int {
	m := values[0]
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

func (f *frame) draw() string {
	const (
		bodySplitter   string = "|"
		borderSplitter string = "+"
		borderBody     string = "-"
		arrowTipLeft   string = "<-"
		arrowBody      string = "-"
		arrowTipRight  string = "->"
		indexBody      string = " "
		arrowSplitter  string = " "
	)

	type entry struct {
		index     string
		name      string
		width     string
		minLength int
	}

	leftpad := strings.Repeat(" ", f.leftpad)
	entries := make([]entry, len(f.fields))

	for i := range entries {
		field := &f.fields[i]
		if f.layout == RightToLeft {
			field = &f.fields[len(f.fields)-i-1]
		}

		e := &entries[i]
		e.index = fmt.Sprintf("%v", field.Begin)
		if f.layout == RightToLeft {
			e.index = fmt.Sprintf("%v", field.TopUnit())
		}

		e.name = fmt.Sprintf(" %v ", field.Name)
		e.width = fmt.Sprintf(" %v %v ", field.Width, f.unit)
		e.minLength = maxInt([]int{len(e.index), len(e.name), len(arrowTipLeft) + len(e.width) + len(arrowTipRight)})
	}

	var indicesRow, headerRow, bodyRow, footerRow, widthsRow strings.Builder

	indicesRow.WriteString(leftpad)
	headerRow.WriteString(leftpad)
	bodyRow.WriteString(leftpad)
	footerRow.WriteString(leftpad)
	widthsRow.WriteString(leftpad)

	for _, e := range entries {
		indicesRow.WriteString(e.index)
		indicesRow.WriteString(strings.Repeat(indexBody, (e.minLength-len(e.index)+1)/len(indexBody)))
		headerRow.WriteString(borderSplitter)
		headerRow.WriteString(strings.Repeat(borderBody, e.minLength/len(borderBody)))
		bodyRow.WriteString(bodySplitter)
		writeRow(e.name, 0, " ", e.minLength, &bodyRow)
		footerRow.WriteString(borderSplitter)
		footerRow.WriteString(strings.Repeat(borderBody, e.minLength/len(borderBody)))
		widthsRow.WriteString(arrowSplitter)
		widthsRow.WriteString(arrowTipLeft)
		writeRow(e.width, len(arrowTipLeft)+len(arrowTipRight), arrowBody, e.minLength, &widthsRow)
		widthsRow.WriteString(arrowTipRight)
	}

	if f.layout == LeftToRight {
		indicesRow.WriteString(fmt.Sprint(f.TopUnit()))
	} else {
		indicesRow.WriteString("0")
	}

	headerRow.WriteString(borderSplitter)
	bodyRow.WriteString(bodySplitter)
	footerRow.WriteString(borderSplitter)
	widthsRow.WriteString(" ")

	var result strings.Builder
	result.WriteString(indicesRow.String())
	result.WriteString("\n")
	result.WriteString(headerRow.String())
	result.WriteString("\n")
	result.WriteString(bodyRow.String())
	result.WriteString("\n")
	result.WriteString(footerRow.String())
	result.WriteString("\n")
	result.WriteString(widthsRow.String())
	result.WriteString("\n")

	return result.String()
}

// fillGaps inserts "(unused)" filler fields into any gap between fields, and
// pads fields out to frameWidth. A field that arrives already covered by a
// prior one is clipped to start past the last unit already claimed (or
// dropped if fully covered) rather than aborting the whole diagram, the same way
// BitView.Write clears a range before writing it instead of corrupting
// whatever was OR'd into overlapping bits before.
func fillGaps(fields []Field, frameWidth int) []Field {
	result := make([]Field, 0, len(fields))
	currentUnit := 0

	for _, field := range fields {
		if field.Begin > currentUnit {
			result = append(result, Field{
				Name:  "(unused)",
				Begin: currentUnit,
				Width: field.Begin - currentUnit,
			})
		} else if field.Begin < currentUnit {
			overlap := currentUnit - field.Begin
			if overlap >= field.Width {
				continue
			}
			field.Begin = currentUnit
			field.Width -= overlap
		}

		result = append(result, field)
		currentUnit = field.PastTopUnit()
	}

	if currentUnit < frameWidth {
		result = append(result, Field{
			Name:  "(unused)",
			Begin: currentUnit,
			Width: frameWidth - currentUnit,
		})
	}

	return result
}

// Draw renders an ASCII diagram of a binary frame composed of contiguous
// fields of different bit widths.
func Draw(fields []Field, frameWidth int, unit string, layout UnitLayout, leftpad int) string {
	allFields := fillGaps(fields, frameWidth)

	fr := frame{
		fields:     allFields,
		frameWidth: allFields[len(allFields)-1].PastTopUnit(),
		unit:       unit,
		leftpad:    leftpad,
		layout:     layout,
	}

	return fr.draw()
}
