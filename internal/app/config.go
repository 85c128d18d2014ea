package app

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Constants
const (
	YearsDir        = "years"
	StoreFileName   = "meetups.json"
	ListingFileName = "meetups.md"
	TmpSuffix       = ".tmp"
	FilePermissions = 0644
	DirPermissions  = 0755

	// Canonical formats
	StoreDateLayout = "2006-01-02"
	LongDateLayout  = "January 02, 2006"
	ClockLayout     = "3:04pm"
	DefaultTime     = "6:30pm"

	// ICS constants
	ICSProductID        = "-//CapitalDevs//Meetups//EN"
	ICSUIDDomain        = "@meetups.capital-devs.org"
	MeetupDurationHours = 2

	// Environment
	EnvDataDir = "MEETUPS_DIR"
)

// DataPath is the root directory holding the years/ tree. Set by
// ResolveDataPath; tests override it directly.
var DataPath string

// ResolveDataPath picks the data directory: an explicit flag value wins,
// then the MEETUPS_DIR environment variable (a .env file in the working
// directory is honored), then the working directory itself.
func ResolveDataPath(flagValue string) error {
	if flagValue != "" {
		DataPath = flagValue
		return nil
	}
	_ = godotenv.Load()
	if env := os.Getenv(EnvDataDir); env != "" {
		DataPath = env
		return nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	DataPath = cwd
	return nil
}

// YearDir returns the directory holding one year's store files.
func YearDir(year int) string {
	return filepath.Join(DataPath, YearsDir, strconv.Itoa(year))
}

// StorePath returns the structured JSON file path for a year.
func StorePath(year int) string {
	return filepath.Join(YearDir(year), StoreFileName)
}

// ListingPath returns the derived markdown listing path for a year.
func ListingPath(year int) string {
	return filepath.Join(YearDir(year), ListingFileName)
}
