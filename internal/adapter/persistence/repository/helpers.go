package repository

import "os"

// getenvDefault reads an env var with a development fallback. Table names
// are resolved through it so deployments can rename tables per environment.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
