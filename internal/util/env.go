package util

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file when one exists. Missing files are not an
// error so the service can run with plain environment variables.
func LoadEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}
