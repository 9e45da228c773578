package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/config"
	paymentControllers "github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/controllers/payment"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/logger"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/models"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/routes"
)

func main() {
	logger.Init()
	cfg := config.Load()

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Product{},
		&models.CartLine{},
		&models.WishlistLine{},
		&models.Order{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int((24 * time.Hour).Seconds()),
	})
	r.Use(sessions.Sessions("jshop_session", store))

	gateway := paymentControllers.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	routes.SetupRoutes(r, db, gateway, cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// initDatabase opens the GORM postgres connection, preferring a full
// DATABASE_URL over the discrete DB_* variables.
func initDatabase(cfg config.Config) *gorm.DB {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = cfg.DSN()
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	return db
}
