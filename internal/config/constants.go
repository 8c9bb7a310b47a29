package config

import "time"

// Base application details
const AppName = "slided"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "slided.log"

// Editing defaults
const DefaultHistoryLimit = 100
const DefaultTheme = "light"
const DefaultFont = "Arial"
const DefaultColor = "Black"
const DefaultPrompt = "> "

// Autosave
const DefaultAutosavePath = "autosave.json"
const DefaultAutosaveEvery = 5

// Preview
const DefaultPreviewTheme = "dark"
const StatusBarHeight = 1
const MessageTimeout = 4 * time.Second
