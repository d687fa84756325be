package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tunedex/tunedex/fetch"
)

func init() {
	rootCmd.AddCommand(downloadCmd)
}

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Downloads the dataset",
	Long:  `Downloads the tunes and aliases dumps from the TheSession-data repository`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range []string{"tunes", "aliases"} {
			path, err := fetch.Download(name)
			cobra.CheckErr(err)
			fmt.Printf("Wrote %v\n", path)
		}
	},
}
