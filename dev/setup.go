package main

import (
	"fmt"
	"log/slog"
	"os"

	devenv "bachelorette-db/dev/env"
	configsqlite "bachelorette-db/lib/configutil/sqlite"
	"bachelorette-db/services/contestants/db"
)

const dbPath = "<dev_state>/bachelorette.db"

func CreateEmptyDB() error {
	path, err := devenv.ResolvePath(dbPath)
	if err != nil {
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		fmt.Println("database already created at", path)
		return nil
	}

	fmt.Println("creating database at", path)
	conn, err := configsqlite.Struct{File: dbPath}.OpenDB()
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Exec(db.Schema)
	return err
}

func PrintConfigLocations() {
	slog.Info("bachelorette-cli reads bachelorette.json5 (and bachelorette.local.json5) from the working directory or above, telemetry is exported only when a telemetry.json5 exists.")
}
