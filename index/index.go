// Package index assembles the search index data file: contour strings for
// every setting that renders, alias groups for every tune.
package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tunedex/tunedex/abcm"
	"github.com/tunedex/tunedex/alias"
	"github.com/tunedex/tunedex/constants"
	"github.com/tunedex/tunedex/contour"
	"github.com/tunedex/tunedex/midi"
	"github.com/tunedex/tunedex/model"
	"github.com/tunedex/tunedex/timeline"
)

var defaultConfig = contour.Config{
	MidiLow:        constants.MidiLow,
	MidiHigh:       constants.MidiHigh,
	Alphabet:       constants.MidiMap,
	TicksPerQuaver: constants.TicksPerQuaver,
}

// BuildAll runs the whole pipeline: load both dumps, gather alias groups,
// convert every setting to a contour across the worker pool, then merge and
// write the payload and its meta record. maxNum > 0 caps the number of
// settings processed, which keeps trial runs fast.
func BuildAll(maxNum int) error {
	dataDir := constants.GetDataDir()
	if err := os.MkdirAll(filepath.Join(dataDir, "midis"), 0777); err != nil {
		return fmt.Errorf("creating midis dir: %w", err)
	}

	var tunes []model.SettingRecord
	if err := readJSON(filepath.Join(dataDir, "tunes.json"), &tunes); err != nil {
		return err
	}
	var aliasRecords []model.AliasRecord
	if err := readJSON(filepath.Join(dataDir, "aliases.json"), &aliasRecords); err != nil {
		return err
	}

	if maxNum > 0 && len(tunes) > maxNum {
		tunes = tunes[:maxNum]
	}

	fmt.Println("Gathering tune name aliases")
	groups, err := alias.Gather(aliasRecords, tunes)
	if err != nil {
		return err
	}

	fmt.Printf("Converting %v settings to contour strings\n", len(tunes))
	results := contourAll(tunes)

	settings := make(map[string]model.Setting)
	for _, t := range tunes {
		settings[t.SettingID] = model.Setting{
			TuneID: t.TuneID,
			Dance:  t.Type,
			Meter:  t.Meter,
			Mode:   t.Mode,
			Abc:    t.Abc,
		}
	}

	// A setting without a contour is kept anyway: the sheet music is still
	// worth distributing even when it isn't queryable.
	for _, r := range results {
		if !r.ok {
			continue
		}
		s := settings[r.settingID]
		s.Contour = r.contour
		settings[r.settingID] = s
	}

	payloadPath := filepath.Join(dataDir, constants.DataFileName)
	fmt.Printf("Writing %v\n", payloadPath)
	if err := writeJSON(payloadPath, model.IndexData{Settings: settings, Aliases: groups}); err != nil {
		return err
	}

	return WriteMeta(payloadPath, filepath.Join(dataDir, constants.MetaFileName))
}

// settingContour renders one setting to midi and quantizes it. Every failure
// comes back as a missing contour, never as a build error, so one bad
// setting can't take down its siblings.
func settingContour(t model.SettingRecord) contourResult {
	res := contourResult{settingID: t.SettingID}

	// One output file per setting id, so concurrent conversions can't
	// collide. An existing file is reused across runs.
	outPath := filepath.Join(constants.GetDataDir(), "midis", t.SettingID+".midi")
	if _, err := os.Stat(outPath); err != nil {
		abc := abcm.Render(t.Meter, t.Mode, t.Abc)
		diag, err := abcm.Convert(abc, outPath)
		if diag != "" {
			fmt.Printf("abc2midi on setting %v: %v\n", t.SettingID, strings.TrimSpace(diag))
		}
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", t.SettingID, err)
			return res
		}
	}

	s, err := midi.ReadFile(outPath)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", t.SettingID, err)
		return res
	}

	notes := timeline.Build(midi.NoteEvents(s))
	if len(notes) == 0 {
		return res
	}

	res.contour = contour.Quantize(notes, constants.DefaultTempo, defaultConfig, contour.Options{})
	res.ok = true
	return res
}

// WriteMeta records the version stamp (days since 2020-01-01), the payload
// size and a build id next to the payload.
func WriteMeta(payloadPath, metaPath string) error {
	info, err := os.Stat(payloadPath)
	if err != nil {
		return err
	}

	epoch := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	meta := model.Meta{
		V:     int(time.Since(epoch).Hours() / 24),
		Size:  info.Size(),
		Build: uuid.New().String(),
	}
	return writeJSON(metaPath, meta)
}

func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %v: %w", path, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decoding %v: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %v: %w", path, err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("encoding %v: %w", path, err)
	}
	return nil
}
