package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tunedex/tunedex/constants"
	"github.com/tunedex/tunedex/model"
	"github.com/tunedex/tunedex/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report over the built index",
	Long:  `Creates a report over the built index`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type indexReport struct {
	numSettings     int
	numContours     int
	contourFraction float32
	numTunes        int
	numAliases      uint64
	payloadBytes    int64
}

func analyzeIndex(path string) indexReport {
	var r indexReport

	f := util.OpenFileOrPanic(path)
	defer f.Close()

	var data model.IndexData
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		panic("Could not decode data file: " + err.Error())
	}

	r.numSettings = len(data.Settings)
	for _, key := range util.SortedKeys(data.Settings) {
		if data.Settings[key].Contour != "" {
			r.numContours += 1
		}
	}
	if r.numSettings > 0 {
		r.contourFraction = float32(r.numContours) / float32(r.numSettings)
	}

	r.numTunes = len(data.Aliases)
	groupSizes := make([]int, 0, len(data.Aliases))
	for _, group := range data.Aliases {
		groupSizes = append(groupSizes, len(group))
	}
	r.numAliases = util.Sum(groupSizes)

	stats, err := os.Stat(path)
	if err != nil {
		panic("Could not get file stats")
	}
	r.payloadBytes = stats.Size()

	return r
}

func report() {
	r := analyzeIndex(filepath.Join(constants.GetDataDir(), constants.DataFileName))
	fmt.Printf("numSettings: %v\n", r.numSettings)
	fmt.Printf("numContours: %v\n", r.numContours)
	fmt.Printf("contourFraction: %v\n", r.contourFraction)
	fmt.Printf("numTunes: %v\n", r.numTunes)
	fmt.Printf("numAliases: %v\n", r.numAliases)
	fmt.Printf("avgAliasesPerTune: %v\n", float32(r.numAliases)/float32(r.numTunes))
	fmt.Printf("payloadBytes: %v\n", r.payloadBytes)
}
