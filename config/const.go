package config

import "strings"

// AppVersion is the version of the application, set at build time.
var AppVersion string

// AppName is the name of the application.
const AppName = "Glance"

// AppID is the Fyne application ID, used as the preferences namespace.
const AppID = "com.dixieflatline76.glance"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// TuningFile is the name of the optional tuning override file in the config directory.
const TuningFile = "tuning.json"
