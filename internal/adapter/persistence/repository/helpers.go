package repository

import "os"

// getenvDefault resolves table-name overrides such as BUDGETS_TABLE.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
