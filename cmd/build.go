package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tunedex/tunedex/index"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build [maxNum]",
	Short: "Builds the index data file",
	Long:  `Builds the index data file, optionally capped to the first maxNum settings`,
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			maxNum = arg1
		}

		cobra.CheckErr(index.BuildAll(maxNum))
	},
}
