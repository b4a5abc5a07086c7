package config

import "os"

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogFile is the rotating log file path; empty disables file logging.
func LogFile() string {
	return os.Getenv("MINESWEEPER_LOG_FILE")
}
