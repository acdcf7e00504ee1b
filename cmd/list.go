package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/schaban/mbdisasm/pkg/elf32"
	"github.com/schaban/mbdisasm/pkg/mbdisasm"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list elf-path",
	Short: "List the global functions of a MicroBlaze ELF32 image",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		img, err := elf32.Load(path)
		if err != nil {
			Logger.Error("failed to load image", "path", path, "error", err)
			os.Exit(1)
		}

		funcs := mbdisasm.Functions(img)
		Logger.Info("loaded image", "path", path, "global_funcs", len(funcs))

		switch listFormat {
		case "yaml":
			out, err := yaml.Marshal(funcs)
			if err != nil {
				Logger.Error("failed to marshal function list", "error", err)
				os.Exit(1)
			}
			fmt.Print(string(out))
		default:
			for _, fn := range funcs {
				fmt.Printf("%-32s 0x%08X  %d bytes\n", fn.Name, fn.Addr, fn.Size)
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listFormat, "format", "text", "output format: text or yaml")
}
