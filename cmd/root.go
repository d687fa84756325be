package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tunedex",
	Short: "Builds a melody search index from the thesession.org data dumps",
	Long: `Builds a melody search index from the thesession.org data dumps:
a quantized contour string per setting and a deduplicated alias list per tune.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
