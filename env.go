package trng

import (
	"os"
	"strconv"
)

func GetEnv(name string, defaultValue string) string {
	value, ok := os.LookupEnv(name)
	if !ok {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the integer value of env var name, or defaultValue if the
// var is unset or not an integer
func GetEnvInt(name string, defaultValue int) int {
	value, ok := os.LookupEnv(name)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		Logf("Ignoring %s=%q: %s", name, value, err)
		return defaultValue
	}
	return n
}
