package repository

import (
	"context"
	"database/sql"

	"pollsapp/internal/adapter/database"
)

// execAffectingOne runs a statement keyed by id and reports a missing row
// as not found.
func execAffectingOne(ctx context.Context, db *database.DB, query string, args []interface{}) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return database.NotFound(sql.ErrNoRows)
	}

	return nil
}
