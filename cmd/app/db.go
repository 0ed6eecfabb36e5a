package main

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// createDbIfNotExists connects to the maintenance database and creates the
// application database when it is missing. CREATE DATABASE cannot run inside
// a transaction, so this uses a plain database/sql connection instead of gorm.
func createDbIfNotExists(host, port, user, password, dbName, sslMode string) error {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		host, port, user, password, sslMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}

	if exists {
		return nil
	}

	if _, err = db.Exec(fmt.Sprintf(`CREATE DATABASE %q`, dbName)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", dbName, err)
	}

	return nil
}
