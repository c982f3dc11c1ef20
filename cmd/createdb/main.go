// Command createdb creates the application tables. It is idempotent and safe
// to run against an existing database.
package main

import (
	"database/sql"
	"os"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(128) NOT NULL,
	role VARCHAR(50) NOT NULL DEFAULT 'user',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS products (
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	price DOUBLE PRECISION NOT NULL,
	stock INTEGER NOT NULL DEFAULT 0
);`

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	dbConn := os.Getenv("DB_CONN")
	if dbConn == "" {
		logger.Fatal("DB_CONN is required")
	}

	db, err := sql.Open("postgres", dbConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		logger.Fatalf("Failed to create tables: %v", err)
	}
	logger.Info("Database tables created")
}
