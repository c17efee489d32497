package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alexanderukhanov/restaurants-back-serverless/configs"
	"github.com/alexanderukhanov/restaurants-back-serverless/pkg/blob"
	"github.com/alexanderukhanov/restaurants-back-serverless/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// KV read path
	rdb := configs.ConnectRedis(cfg)

	// blob store รูป preview
	store, err := blob.NewStore(context.Background(), cfg.S3Region, cfg.S3Bucket)
	if err != nil {
		logrus.WithError(err).Fatal("blob store init failed")
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, rdb, store, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
