//go:build linux

package sysinfo

import (
	"fmt"
	"os/exec"
	"strings"
)

// GetScreenDimensions returns the desktop dimensions on Linux using xdpyinfo.
func GetScreenDimensions() (int, int, error) {
	out, err := exec.Command("xdpyinfo").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to run xdpyinfo: %w", err)
	}
	return parseXdpyinfo(string(out))
}

// parseXdpyinfo looks for "dimensions:    1920x1080 pixels (508x285 millimeters)".
func parseXdpyinfo(out string) (int, int, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "dimensions:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 2 {
			return parseResolutionString(parts[1])
		}
	}
	return 0, 0, fmt.Errorf("no dimensions line in xdpyinfo output")
}
