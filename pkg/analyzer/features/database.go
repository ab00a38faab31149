package features

import "github.com/joho/godotenv"

// Database describes the detected database technology. EnvConfigured is
// set when an env file declares a database connection, independently of
// whether a driver dependency was found.
type Database struct {
	Type          string `json:"type"`
	Driver        string `json:"driver,omitempty"`
	EnvConfigured bool   `json:"env_configured,omitempty"`
}

var databaseKeywords = []keywordEntry{
	{"postgresql", []string{"pg", "psycopg2", "postgres"}},
	{"mysql", []string{"mysql", "mysql2", "pymysql"}},
	{"mongodb", []string{"mongodb", "mongoose", "pymongo"}},
	{"redis", []string{"redis", "ioredis"}},
	{"sqlite", []string{"sqlite", "sqlite3"}},
	{"convex", []string{"convex"}},
	{"supabase", []string{"supabase"}},
	{"firebase", []string{"firebase"}},
}

var envFiles = []string{".env", ".env.local", ".env.example"}

var envMarkers = []string{"DATABASE_URL", "DB_HOST"}

// DetectDatabase matches dependency names against the database keyword
// table, first table entry wins. Every env file in the fixed list is then
// inspected; a database connection variable in any of them sets
// EnvConfigured, creating a placeholder record if the dependency scan
// found nothing.
func DetectDatabase(fs FSReader, deps map[string]string) *Database {
	var db *Database

	names := sortedNames(deps)
	for _, entry := range databaseKeywords {
		if driver, ok := firstMatch(names, entry.keywords); ok {
			db = &Database{Type: entry.label, Driver: driver}
			break
		}
	}

	for _, file := range envFiles {
		if !fs.Has(file) {
			continue
		}
		vars, err := godotenv.Unmarshal(fs.Read(file))
		if err != nil {
			continue
		}
		for _, marker := range envMarkers {
			if _, ok := vars[marker]; ok {
				if db == nil {
					db = &Database{Type: "detected via env vars"}
				}
				db.EnvConfigured = true
				break
			}
		}
	}

	return db
}
