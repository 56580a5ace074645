package env

import (
	"os"
	"strconv"
)

// GetString reads an environment variable, falling back to defaultValue
// when it is unset or empty.
func GetString(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}
	return value
}

// GetInt reads an integer environment variable, falling back to defaultValue
// when it is unset or not a valid integer.
func GetInt(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
