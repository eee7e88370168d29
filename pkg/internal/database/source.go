package database

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var C *gorm.DB

func NewGorm() error {
	var err error

	dsn := viper.GetString("database.dsn")
	C, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.New(&log.Logger, logger.Config{
			Colorful: true,
			LogLevel: logger.Warn,
		}),
	})
	if err != nil {
		return err
	}

	log.Info().Msg("Database connected.")
	return nil
}
