// Package abcm is the boundary to the abc2midi converter.
package abcm

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/tunedex/tunedex/constants"
)

// Render assembles a complete ABC tune from one setting's fields. The dump
// stores only the body; the header pins the unit note length to a quaver so
// the converter's tick output matches the quantizer's grid convention.
func Render(meter, mode, body string) string {
	header := []string{
		"X:1",
		"T:",
		fmt.Sprintf("M:%v", strings.TrimSpace(meter)),
		"L:1/8",
		fmt.Sprintf("K:%v", strings.TrimSpace(mode)),
	}
	body = strings.ReplaceAll(body, "\\", "")
	body = strings.ReplaceAll(body, "\r", "")
	return strings.Join(header, "\n") + "\n" + body
}

// Convert feeds ABC text to abc2midi on stdin and writes a midi file at
// outPath. The converter grumbles on stderr about recoverable problems; that
// output comes back as a diagnostic, not an error. -NGUI drops the guitar
// chord and accompaniment tracks so only the melody line is rendered.
func Convert(abc, outPath string) (string, error) {
	cmd := exec.Command(constants.GetAbc2midiPath(), "-",
		"-quiet", "-silent", "-NGUI", "-o", outPath)
	cmd.Stdin = strings.NewReader(abc)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stderr.String(), fmt.Errorf("running abc2midi: %w", err)
	}
	return stderr.String(), nil
}
