package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tunedex/tunedex/constants"
	"github.com/tunedex/tunedex/publish"
)

func init() {
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publishes the built index to S3",
	Long:  `Publishes the built index data and meta files to the distribution bucket`,
	Run: func(cmd *cobra.Command, args []string) {
		dataDir := constants.GetDataDir()
		cobra.CheckErr(publish.Upload(
			filepath.Join(dataDir, constants.DataFileName),
			filepath.Join(dataDir, constants.MetaFileName),
		))
	},
}
