package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envNamespace = "SCHEMATA_NAMESPACE"
	envColor     = "SCHEMATA_COLOR"
)

// loadEnv applies environment defaults, reading a .env file in the
// working directory when there is one.
func (cfg *MainConfig) loadEnv() {
	_ = godotenv.Load()
	cfg.Namespace = os.Getenv(envNamespace)
	if v := os.Getenv(envColor); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			theLog.Warn("ignoring invalid "+envColor, "value", v)
			return
		}
		cfg.EnvColor = &b
	}
}
