package repository

import "os"

// Table names are env-overridable so local DynamoDB and test stacks can use
// prefixed tables without code changes.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
