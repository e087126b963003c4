package gorm

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DB struct
type DB struct {
	Conn   *gorm.DB
	Driver string
}

// PostgresDSN func - Builds a PostgreSQL connection string from discrete settings
func PostgresDSN(host, port, username, pass, dbname string, sslmode bool) (string, error) {
	if host == "" && port == "" && dbname == "" {
		return "", errors.New("cannot estabished the connection")
	}
	mode := "disable"
	if sslmode {
		mode = "require"
	}
	return fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v connect_timeout=0",
		host, username, pass, dbname, port, mode), nil
}

// Open func - Opens a gorm connection for driver ("postgres" or "sqlite", the default)
func Open(driver, dsn string) (*DB, error) {
	var dial gorm.Dialector
	switch driver {
	case DriverPostgres:
		dial = postgres.Open(dsn)
	case DriverSQLite, "":
		driver = DriverSQLite
		dial = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	conn, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	if driver == DriverSQLite {
		// One writer at a time; also keeps ":memory:" databases on a single connection
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	logrus.Infof("Connected to %s database", driver)
	return &DB{Conn: conn, Driver: driver}, nil
}

// Close func
func Close(db *gorm.DB) {
	sqlDb, err := db.DB()
	if err != nil {
		logrus.Error(err)
		return
	}
	if err = sqlDb.Close(); err != nil {
		logrus.Error(err)
	}
	logrus.Println("Database connection has closed")
}
