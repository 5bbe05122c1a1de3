package gorm

import (
	"fmt"

	"weather-widget/pkg/resource"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database selected by app.db.driver (postgres or sqlite)
func Open() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch driver := resource.GetString("app.db.driver"); driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
			resource.GetString("app.db.host"),
			resource.GetString("app.db.username"),
			resource.GetString("app.db.password"),
			resource.GetString("app.db.database"),
			resource.GetString("app.db.port"),
			resource.GetString("app.db.schema"))
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(resource.GetString("app.db.sqlite-path"))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}
	return db, nil
}
