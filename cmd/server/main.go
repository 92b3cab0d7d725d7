package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agritrust/config"
	"agritrust/database"
	"agritrust/router"

	// Auth
	authCtrlImp "agritrust/pkg/auth/controllerImp"
	authRepoImp "agritrust/pkg/auth/repositoryImp"
	authSvcImp "agritrust/pkg/auth/serviceImp"
	"agritrust/pkg/auth/hash"
	"agritrust/pkg/auth/token"

	// Marketplace
	productCtrlImp "agritrust/pkg/product/controllerImp"
	productRepoImp "agritrust/pkg/product/repositoryImp"
	productSvcImp "agritrust/pkg/product/serviceImp"

	// Farmer directory
	farmerCtrlImp "agritrust/pkg/farmer/controllerImp"
	farmerRepoImp "agritrust/pkg/farmer/repositoryImp"
	farmerSvcImp "agritrust/pkg/farmer/serviceImp"

	// Eco passport
	passportCtrlImp "agritrust/pkg/passport/controllerImp"
	passportRepoImp "agritrust/pkg/passport/repositoryImp"
	passportSvcImp "agritrust/pkg/passport/serviceImp"

	// Community articles
	articleCtrlImp "agritrust/pkg/community/controllerImp"
	articleRepoImp "agritrust/pkg/community/repositoryImp"
	articleSvcImp "agritrust/pkg/community/serviceImp"

	// Health
	healthCtrlImp "agritrust/pkg/health/controllerImp"

	"agritrust/pkg/cache"
	"agritrust/pkg/catalog"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Cache: redis when configured, in-process otherwise
	var store cache.Store
	if cfg.RedisAddr != "" {
		store = cache.NewRedis(cfg.RedisAddr, "agritrust:")
	} else {
		store = cache.NewMemory()
	}

	// 4) Auth wiring
	tm := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	userRepo := authRepoImp.New(db)
	authSvc := authSvcImp.New(userRepo, hash.New(), tm, nil)
	authCtrl := authCtrlImp.New(authSvc)

	// 5) Marketplace
	productRepo := productRepoImp.New(db)
	productSvc := productSvcImp.New(productRepo, store, 5*time.Minute)
	productCtrl := productCtrlImp.New(productSvc)

	// 6) Farmer directory — rating stays the fixed placeholder until a
	// review system lands
	farmerRepo := farmerRepoImp.New(db)
	farmerSvc := farmerSvcImp.New(farmerRepo, catalog.FixedRating(4.5))
	farmerCtrl := farmerCtrlImp.New(farmerSvc)

	// 7) Eco passport + QR
	passportRepo := passportRepoImp.New(db)
	passportSvc := passportSvcImp.New(passportRepo, cfg.BaseURL)
	passportCtrl := passportCtrlImp.New(passportSvc)

	// 8) Community articles
	articleRepo := articleRepoImp.New(db)
	articleSvc := articleSvcImp.New(articleRepo)
	articleCtrl := articleCtrlImp.New(articleSvc, cfg.ArticleDomains, cfg.ArticleMaxBytes)

	// 9) Health
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 10) Echo + router
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	r := router.New(e, tm, authCtrl, productCtrl, farmerCtrl, passportCtrl, articleCtrl, hCtrl)

	// 11) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
