package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schaban/mbdisasm/internal/asmfmt"
	"github.com/schaban/mbdisasm/internal/mbrecord"
	"github.com/schaban/mbdisasm/pkg/elf32"
	"github.com/schaban/mbdisasm/pkg/mbdecoder"
	"github.com/schaban/mbdisasm/pkg/mbdisasm"
)

var disasmFormat string
var disasmColor bool

var disasmCmd = &cobra.Command{
	Use:   "disasm elf-path func-name",
	Short: "Disassemble one global function of a MicroBlaze ELF32 image",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		path, name := args[0], args[1]

		img, err := elf32.Load(path)
		if err != nil {
			Logger.Error("failed to load image", "path", path, "error", err)
			os.Exit(1)
		}

		if itext := img.FindSection(".text"); itext >= 0 {
			addr, offs, size := img.SectionAddrInfo(itext)
			Logger.Info(".text section", "addr", addr, "offs", offs, "size", size)
		}

		fn, ok := mbdisasm.FindFunction(img, name)
		if !ok {
			Logger.Error("function not found", "name", name)
			os.Exit(2)
		}
		Logger.Info("disassembling function", "name", fn.Name, "addr", fn.Addr, "size", fn.Size)

		warnUnknown := func(r mbdecoder.Record) {
			if err := mbdecoder.CheckKnown(r); err != nil {
				Logger.Warn("unrecognized instruction", "error", err)
			}
		}

		if disasmFormat == "yaml" {
			var sink mbrecord.YAMLSink
			if err := mbdisasm.DisassembleFunction(img, fn, func(r mbdecoder.Record) {
				warnUnknown(r)
				sink.Collect(r)
			}); err != nil {
				Logger.Error("disassembly failed", "func", name, "error", err)
				os.Exit(1)
			}
			out, err := sink.Marshal()
			if err != nil {
				Logger.Error("failed to marshal records", "error", err)
				os.Exit(1)
			}
			fmt.Print(string(out))
			return
		}

		render := func(r mbdecoder.Record) string { return r.Disassembly() }
		if disasmColor {
			render = asmfmt.Highlight
		}

		err = mbdisasm.DisassembleFunction(img, fn, func(r mbdecoder.Record) {
			warnUnknown(r)
			fmt.Println(render(r))
		})
		if err != nil {
			Logger.Error("disassembly failed", "func", name, "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	RootCmd.AddCommand(disasmCmd)
	disasmCmd.Flags().StringVar(&disasmFormat, "format", "text", "output format: text or yaml")
	disasmCmd.Flags().BoolVar(&disasmColor, "color", false, "syntax-highlight the disassembly")
}
