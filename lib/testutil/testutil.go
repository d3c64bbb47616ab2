package testutil

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	configsqlite "bachelorette-db/lib/configutil/sqlite"
	"bachelorette-db/lib/telemetry"
)

type ServiceParams struct {
	Name string
	// if unspecified, the database is left empty
	DbSchema string
}

type ServiceResult struct {
	// a file backed database in a temporary directory, so that
	// every OpenDB call sees the same data
	Store configsqlite.Struct
	DB    *sql.DB
}

func SetupService(t testing.TB, params ServiceParams) ServiceResult {
	cleanup := telemetry.SetupForTesting(fmt.Sprintf("test:%s", params.Name))
	t.Cleanup(cleanup)

	store := configsqlite.Struct{
		File: filepath.Join(t.TempDir(), params.Name+".db"),
	}
	db, err := store.OpenDB()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	if params.DbSchema != "" {
		_, err = db.Exec(params.DbSchema)
		if err != nil {
			t.Fatal(err)
		}
	}

	return ServiceResult{
		Store: store,
		DB:    db,
	}
}
