package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResolutionString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{name: "Compact", input: "1920x1080", wantW: 1920, wantH: 1080},
		{name: "Spaced", input: "3420 x 2214", wantW: 3420, wantH: 2214},
		{name: "Retina suffix", input: "2880 x 1864 Retina", wantW: 2880, wantH: 1864},
		{name: "Refresh rate", input: "1710 x 1107 @ 60.00Hz", wantW: 1710, wantH: 1107},
		{name: "Invalid", input: "no resolution here", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := parseResolutionString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
