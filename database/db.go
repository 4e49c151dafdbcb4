package database

import (
	"fmt"

	"github.com/srad/geosink/conf"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var Db *gorm.DB

// Init opens the user-account store. The driver is chosen by config; sqlite
// needs no external service and is the default for single-host deployments.
func Init(cfg *conf.Cfg) error {
	var dialector gorm.Dialector

	switch cfg.DbDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DbDSN)
	case "mysql":
		dialector = mysql.Open(cfg.DbDSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DbFileName)
	default:
		return fmt.Errorf("unknown database driver %q", cfg.DbDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect %s database: %w", cfg.DbDriver, err)
	}
	Db = db

	return migrate()
}

func migrate() error {
	if err := Db.AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	return nil
}
