package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// NewViper loads .env into the environment when present, then reads
// config.yaml (config.prod.yaml when ENV=production). Environment variables
// override file keys: DATABASE_HOST overrides database.host.
func NewViper() *viper.Viper {
	_ = godotenv.Load()

	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	setDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	return config
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "quizdrill")
	config.SetDefault("api.listen", ":8080")
	config.SetDefault("log.level", "info")
	config.SetDefault("log.format", "text")
	config.SetDefault("database.driver", "postgres")
	config.SetDefault("database.sqlite.path", "quizdrill.db")
	config.SetDefault("exam.default.single", 10)
	config.SetDefault("exam.default.multiple", 5)
	config.SetDefault("exam.default.judge", 5)
}
