// picks the GORM driver by DBDriver. No repository/service code changes needed when you change DB.

package config

import (
	"log"

	"github.com/harshu1705/NSSS-Certificate/models" // auto-migrate the participants table

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// GORM drivers (we open one depending on cfg.DBDriver).
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
)

// InitDB opens the database named by cfg.DBDriver and migrates the
// participants table. Only called when the roster lives in the database
// or when importing names into it.
func InitDB(cfg *Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	// Warn keeps output readable (Info logs every query).
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch cfg.DBDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			log.Fatal("[db] mysql selected but mysql_dsn empty")
		}
		db, err = gorm.Open(mysql.Open(cfg.MySQLDSN), gormCfg)
	case "postgres":
		if cfg.PostgresDSN == "" {
			log.Fatal("[db] postgres selected but postgres_dsn empty")
		}
		db, err = gorm.Open(postgres.Open(cfg.PostgresDSN), gormCfg)
	case "sqlite":
		// SQLite only needs a file path; GORM creates the file if missing.
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	case "sqlserver":
		if cfg.SQLServerDSN == "" {
			log.Fatal("[db] sqlserver selected but sqlserver_dsn empty")
		}
		db, err = gorm.Open(sqlserver.Open(cfg.SQLServerDSN), gormCfg)
	default:
		log.Fatalf("[db] unknown DBDriver: %s", cfg.DBDriver) // fail fast
	}

	if err != nil {
		log.Fatalf("[db] connection error: %v", err)
	}

	if err := db.AutoMigrate(&models.Participant{}); err != nil {
		log.Fatalf("[db] automigrate error: %v", err)
	}
	log.Printf("[db] connected: driver=%s", cfg.DBDriver)
	return db
}
