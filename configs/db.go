package configs

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}
	db = database
	logrus.WithField("db", cfg.DBName).Info("database connected")
}

func SetupDatabase() {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Dish{},
		&entity.UserLike{},
		&entity.Order{},
		&entity.DishInOrder{},
	)
	if err != nil {
		logrus.WithError(err).Fatal("auto migrate failed")
	}
}
