package config

import "os"

func IsDebug() bool {
	return os.Getenv("TRIAGE_DEBUG") == "1"
}
