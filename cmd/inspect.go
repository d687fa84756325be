package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tunedex/tunedex/constants"
	"github.com/tunedex/tunedex/model"
	"github.com/tunedex/tunedex/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [settingID]",
	Short: "Inspects one setting of the built index",
	Long:  `Inspects one setting of the built index`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(settingID string) {
	f := util.OpenFileOrPanic(filepath.Join(constants.GetDataDir(), constants.DataFileName))
	defer f.Close()

	var data model.IndexData
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		panic("Could not decode data file: " + err.Error())
	}

	setting, ok := data.Settings[settingID]
	if !ok {
		fmt.Printf("No setting with id %v\n", settingID)
		return
	}

	fmt.Printf("tune: %v\n", setting.TuneID)
	fmt.Printf("dance: %v\n", setting.Dance)
	fmt.Printf("meter: %v\n", setting.Meter)
	fmt.Printf("mode: %v\n", setting.Mode)
	fmt.Printf("contour: %v\n", setting.Contour)
	fmt.Printf("aliases: %v\n", data.Aliases[setting.TuneID])
}
