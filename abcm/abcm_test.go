package abcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBuildsFullTune(t *testing.T) {
	got := Render(" 4/4 ", "Gmajor\n", "|:GABc dedB:|\r\n|:gfge \\dBGB:|")
	want := "X:1\n" +
		"T:\n" +
		"M:4/4\n" +
		"L:1/8\n" +
		"K:Gmajor\n" +
		"|:GABc dedB:|\n" +
		"|:gfge dBGB:|"
	assert.Equal(t, want, got)
}
