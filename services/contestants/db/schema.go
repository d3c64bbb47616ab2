package db

import (
	"context"
	"database/sql"
	_ "embed"
)

//go:embed schema.sql
var Schema string

const DropSchema = "drop table if exists contestants;"

// Reset drops the contestants table and creates it again.
func Reset(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, DropSchema)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, Schema)
	if err != nil {
		return err
	}
	return tx.Commit()
}
