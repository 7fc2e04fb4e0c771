//go:build darwin

package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSystemProfiler(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{
			name: "Main display",
			input: `{"SPDisplaysDataType":[{"spdisplays_ndrvs":[
				{"_spdisplays_pixels":"1920 x 1080"},
				{"_spdisplays_pixels":"3420 x 2214","spdisplays_main":"spdisplays_yes"}]}]}`,
			wantW: 3420, wantH: 2214,
		},
		{
			name:  "First display fallback",
			input: `{"SPDisplaysDataType":[{"spdisplays_ndrvs":[{"_spdisplays_pixels":"2560 x 1440"}]}]}`,
			wantW: 2560, wantH: 1440,
		},
		{name: "No displays", input: `{"SPDisplaysDataType":[]}`, wantErr: true},
		{name: "Invalid JSON", input: `not json`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := parseSystemProfiler([]byte(tt.input))
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
