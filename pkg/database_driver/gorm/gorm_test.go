package gorm

import (
	"strings"
	"testing"
)

func TestPostgresDSN(t *testing.T) {
	dsn, err := PostgresDSN("localhost", "5432", "shop", "secret", "shopbot", false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(dsn, "host=localhost") || !strings.Contains(dsn, "sslmode=disable") {
		t.Errorf("unexpected dsn: %s", dsn)
	}

	dsn, _ = PostgresDSN("db", "5432", "shop", "secret", "shopbot", true)
	if !strings.Contains(dsn, "sslmode=require") {
		t.Errorf("expected sslmode=require, got %s", dsn)
	}

	if _, err := PostgresDSN("", "", "", "", "", false); err == nil {
		t.Error("expected error for empty settings")
	}
}

func TestOpenSQLiteInMemory(t *testing.T) {
	db, err := Open(DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer Close(db.Conn)

	if db.Driver != DriverSQLite {
		t.Errorf("expected sqlite driver, got %s", db.Driver)
	}
	if err := db.Conn.Exec("SELECT 1").Error; err != nil {
		t.Errorf("expected query to succeed, got %v", err)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open("oracle", "dsn"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
