package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/schaban/mbdisasm/internal/browser"
	"github.com/schaban/mbdisasm/pkg/elf32"
)

var browseCmd = &cobra.Command{
	Use:   "browse elf-path",
	Short: "Browse a MicroBlaze ELF32 image's functions interactively",
	Long: `Opens a read-only, interactive function browser: a function
list pane and a disassembly pane. There is no execution, no breakpoints,
and no memory/register inspection -- this is a viewer, not a debugger.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		img, err := elf32.Load(args[0])
		if err != nil {
			Logger.Error("failed to load image", "path", args[0], "error", err)
			os.Exit(1)
		}

		model := browser.NewModel(img)
		view := browser.NewView(model)
		if err := view.Run(); err != nil {
			Logger.Error("browser exited with an error", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	RootCmd.AddCommand(browseCmd)
}
