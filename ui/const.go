package ui

// defaultWindowWidth and defaultWindowHeight are the window size asked for
// before it is capped to the screen.
const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 860
)

// placeholderText is shown in the status bar before a folder is opened
const placeholderText = "Open a folder to start"

// snapshotFileName is the default name offered when saving the current view
const snapshotFileName = "glance.png"
