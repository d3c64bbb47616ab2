package configsqlite

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	devenv "bachelorette-db/dev/env"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Struct describes where the database lives. when Url is set the database is
// a remote libsql database, otherwise File is opened with sqlite.
type Struct struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func wrapOpenDB(err error) error {
	return fmt.Errorf("open db: %w", err)
}

func (config Struct) OpenDB() (*sql.DB, error) {
	if config.Url != "" {
		return config.openRemote()
	}
	return config.openFile()
}

func (config Struct) openRemote() (*sql.DB, error) {
	link, err := url.Parse(config.Url)
	if err != nil {
		return nil, wrapOpenDB(err)
	}
	if config.AuthToken != "" {
		query := link.Query()
		query.Set("authToken", config.AuthToken)
		link.RawQuery = query.Encode()
	}
	db, err := sql.Open("libsql", link.String())
	if err != nil {
		return nil, wrapOpenDB(err)
	}
	return db, nil
}

func (config Struct) openFile() (*sql.DB, error) {
	if config.File == "" {
		return nil, wrapOpenDB(fmt.Errorf("a path was not specified"))
	}
	dbpath, err := devenv.ResolvePath(config.File)
	if err != nil {
		return nil, wrapOpenDB(err)
	}
	if dbpath != ":memory:" {
		err = os.MkdirAll(filepath.Dir(dbpath), 0777)
		if err != nil {
			return nil, wrapOpenDB(err)
		}
	}

	db, err := sql.Open("sqlite", dbpath)
	if err != nil {
		return nil, wrapOpenDB(err)
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		db.Close()
		return nil, wrapOpenDB(err)
	}

	return db, nil
}

// String describes the database without leaking the auth token.
func (config Struct) String() string {
	if config.Url != "" {
		return config.Url
	}
	return config.File
}
