package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/alexanderukhanov/restaurants-back-serverless/configs"
	"github.com/alexanderukhanov/restaurants-back-serverless/controllers"
	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
	"github.com/alexanderukhanov/restaurants-back-serverless/middlewares"
	"github.com/alexanderukhanov/restaurants-back-serverless/repository"
	"github.com/alexanderukhanov/restaurants-back-serverless/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, blob services.BlobStore, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.Timeout(cfg.RequestTimeout))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	dishRepo := repository.NewDishRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	cache := repository.NewCatalogCache(rdb, cfg.CatalogTTL)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.AdminEmail, cfg.AdminPassword)
	userSvc := services.NewUserService(userRepo)
	catalogSvc := services.NewCatalogService(cache, restRepo, dishRepo)
	restSvc := services.NewRestaurantService(db, restRepo, dishRepo, likeRepo, blob)
	restSvc.Cache = catalogSvc
	dishSvc := services.NewDishService(dishRepo, blob)
	dishSvc.Cache = catalogSvc
	orderSvc := services.NewOrderService(db, orderRepo, dishRepo, restRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret, controllers.AuthCookie)
	admin := middlewares.AuthMiddleware(cfg.JWTSecret, controllers.AuthCookie, entity.RoleAdmin)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
	}

	// Profile
	r.GET("/profile", auth, userCtrl.Profile)

	// Restaurants
	r.GET("/restaurants", auth, restCtrl.List)
	r.POST("/restaurants", admin, restCtrl.Create)
	r.PUT("/restaurants", admin, restCtrl.Update)
	r.POST("/restaurants/like", auth, restCtrl.ToggleLike)
	r.DELETE("/restaurants/:id", admin, restCtrl.Delete)

	// Dishes
	r.PUT("/dishes", admin, dishCtrl.Update)
	r.DELETE("/dishes/:id", admin, dishCtrl.Delete)

	// Orders
	u := r.Group("/", auth)
	{
		u.POST("/orders", orderCtrl.Create)
		u.DELETE("/orders/:id", orderCtrl.Delete)
		u.GET("/orders/:id/dishes", orderCtrl.LineItems)
	}

	// Catalog read path (KV store)
	catalog := r.Group("/catalog", auth)
	{
		catalog.POST("/restaurants", catalogCtrl.RestaurantsPage)
		catalog.POST("/dishes-by-name", catalogCtrl.DishesByName)
		catalog.GET("/restaurants/:id", catalogCtrl.RestaurantByID)
	}
}
