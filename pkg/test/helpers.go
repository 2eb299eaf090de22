package test

import (
	"context"
	"log"
	"testing"

	"pollsapp/internal/adapter/database"
)

type TestSetup[T any] struct {
	DB   *database.DB
	Repo T
}

// InitTestDB opens a migrated in-memory sqlite database. Each call returns a
// fresh, empty database.
func InitTestDB() *database.DB {
	db, err := database.Open(context.Background(), database.Options{
		Driver: database.DriverSQLite,
		DSN:    ":memory:",
	})

	if err != nil {
		log.Fatal(err)
	}

	return db
}

// SetupTest opens a fresh database and builds the repository under test on it.
func SetupTest[T any](t *testing.T, newRepo func(*database.DB) T) *TestSetup[T] {
	db := InitTestDB()

	return &TestSetup[T]{
		DB:   db,
		Repo: newRepo(db),
	}
}

func TeardownTest[T any](t *testing.T, setup *TestSetup[T]) {
	if setup.DB != nil {
		CleanDB(t, setup.DB)
		setup.DB.Close()
	}
}

// CleanDB empties every application table, leaving migration state alone.
func CleanDB(t *testing.T, db *database.DB) {
	for _, table := range []string{"choices", "questions", "todos"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}
