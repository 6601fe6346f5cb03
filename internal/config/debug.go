package config

import "os"

func IsDebug() bool {
	return os.Getenv("NUTSHELL_DEBUG") == "1"
}
