package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("jmodel")

func main() {
	var verbose int

	rootCmd := &cobra.Command{
		Use:          "jmodel",
		Short:        "Assemble and inspect Java element models",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newTypeCmd())
	rootCmd.AddCommand(newAnnotationCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
