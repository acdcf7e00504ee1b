package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schaban/mbdisasm/pkg/mbdecoder"
)

var docsOutput string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Dump the MicroBlaze opcode table",
	Long: `Dumps the decoder's opcode table as documentation: mnemonic,
opcode, and operand shape for every recognized instruction.`,
	Run: func(cmd *cobra.Command, args []string) {
		doc := mbdecoder.DocString()

		if docsOutput != "" {
			if err := os.WriteFile(docsOutput, []byte(doc), 0o644); err != nil {
				Logger.Error("failed to write docs file", "path", docsOutput, "error", err)
				os.Exit(1)
			}
			return
		}

		fmt.Print(doc)
	},
}

func init() {
	RootCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringVarP(&docsOutput, "output", "o", "", "Output file. If not specified, dumped to stdout.")
}
