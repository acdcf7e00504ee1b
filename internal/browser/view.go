package browser

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// View is the tview frontend over a Model: a function list on the left,
// a disassembly view on the right, and an Escape/'q' binding to quit.
type View struct {
	app      *tview.Application
	model    *Model
	list     *tview.List
	disasm   *tview.TextView
	selected string
}

// NewView builds the widget tree for model but does not run it; call
// Run to start the event loop.
func NewView(model *Model) *View {
	v := &View{
		model:  model,
		list:   tview.NewList().ShowSecondaryText(true),
		disasm: tview.NewTextView().SetDynamicColors(true).SetScrollable(true),
	}

	v.list.SetBorder(true).SetTitle(" functions ")
	v.disasm.SetBorder(true).SetTitle(" disassembly ")

	for _, fn := range model.Functions() {
		name := fn.Name
		secondary := fmt.Sprintf("0x%08X  %d bytes", fn.Addr, fn.Size)
		v.list.AddItem(name, secondary, 0, func() { v.show(name) })
	}

	v.list.SetChangedFunc(func(_ int, name string, _ string, _ rune) {
		v.show(name)
	})

	if len(model.Functions()) > 0 {
		v.show(model.Functions()[0].Name)
	}

	flex := tview.NewFlex().
		AddItem(v.list, 0, 1, true).
		AddItem(v.disasm, 0, 2, false)

	v.app = tview.NewApplication().SetRoot(flex, true).SetFocus(v.list)
	v.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			v.app.Stop()
			return nil
		}
		return event
	})

	return v
}

// show loads (or reuses the cached) disassembly for name into the
// disassembly pane.
func (v *View) show(name string) {
	if v.selected == name {
		return
	}
	v.selected = name

	records, ok := v.model.Disassembly(name)
	if !ok {
		v.disasm.SetText(fmt.Sprintf("[red]could not disassemble %q[-]", name))
		return
	}

	v.disasm.Clear()
	for _, line := range RenderDisassembly(records) {
		fmt.Fprintln(v.disasm, line)
	}
}

// Run starts the terminal event loop. It blocks until the user quits.
func (v *View) Run() error {
	return v.app.Run()
}
