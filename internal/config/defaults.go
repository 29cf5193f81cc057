// Package config provides configuration loading and defaults for usagelens.
package config

// DefaultSourceDir is the default directory scanned for usage exports.
const DefaultSourceDir = "~/.usagelens/exports"

// DefaultUsageCommand is the external cost-accounting command used when no
// local exports are present.
const DefaultUsageCommand = "ccusage"

// DefaultUsageArgs are the arguments passed to the usage command.
var DefaultUsageArgs = []string{"session", "--json"}

// DefaultConfigDir is the default location for usagelens configuration.
const DefaultConfigDir = "~/.config/usagelens"

// DefaultDBName is the filename for the SQLite snapshot database.
const DefaultDBName = "usagelens.db"

// DefaultLanguage is the default insight/recommendation language.
const DefaultLanguage = "en-US"

// DefaultThresholds holds the default analysis thresholds.
var DefaultThresholds = Thresholds{
	HighCostPerHour:  5.0,
	TrendSensitivity: 0.1,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
