package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the database selected by database.driver (postgres or sqlite).
// A connection failure is fatal.
func New(config *viper.Viper, log *logrus.Logger) *gorm.DB {
	var dialector gorm.Dialector

	switch driver := config.GetString("database.driver"); driver {
	case "sqlite":
		path := config.GetString("database.sqlite.path")
		dialector = sqlite.Open(path)
		log.WithField("path", path).Info("using sqlite database")
	case "postgres", "":
		dialector = postgres.Open(postgresDSN(config))
	default:
		panic(fmt.Errorf("unsupported database driver %q", driver))
	}

	gormLogLevel := logger.Warn
	if log.IsLevelEnabled(logrus.DebugLevel) {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log, logger.Config{
			LogLevel:                  gormLogLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})

	if err != nil {
		panic(fmt.Errorf("failed to connect database: %w", err))
	}

	return db
}

func postgresDSN(config *viper.Viper) string {
	username := config.GetString("database.username")
	password := config.GetString("database.password")
	host := config.GetString("database.host")
	port := config.GetInt("database.port")
	dbname := config.GetString("database.dbname")
	sslmode := config.GetString("database.sslmode")
	if sslmode == "" {
		sslmode = "disable"
	}
	timezone := config.GetString("database.timezone")
	if timezone == "" {
		timezone = "UTC"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		host,
		username,
		password,
		dbname,
		port,
		sslmode,
		timezone,
	)
}
