//go:build linux

package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXdpyinfo(t *testing.T) {
	out := `name of display:    :0
default screen number:    0
screen #0:
  dimensions:    2560x1440 pixels (677x381 millimeters)
  resolution:    96x96 dots per inch
`
	w, h, err := parseXdpyinfo(out)
	require.NoError(t, err)
	assert.Equal(t, 2560, w)
	assert.Equal(t, 1440, h)

	_, _, err = parseXdpyinfo("screen #0:\n")
	assert.Error(t, err)
}
