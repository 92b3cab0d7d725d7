package router

import (
	"github.com/labstack/echo/v4"

	authController "agritrust/pkg/auth/controller"
	"agritrust/pkg/auth/token"
	communityController "agritrust/pkg/community/controller"
	"agritrust/entities"
	farmerController "agritrust/pkg/farmer/controller"
	"agritrust/pkg/middleware"
	passportController "agritrust/pkg/passport/controller"
	productController "agritrust/pkg/product/controller"
)

func New(
	e *echo.Echo,
	tm *token.Manager,
	authCtrl authController.AuthController,
	productCtrl productController.ProductController,
	farmerCtrl farmerController.FarmerController,
	passportCtrl passportController.PassportController,
	articleCtrl communityController.ArticleController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	// public surface
	e.POST("/auth/signup", authCtrl.SignUp)
	e.POST("/auth/signin", authCtrl.SignIn)
	e.POST("/auth/signout", authCtrl.SignOut)
	e.POST("/auth/forgot-password", authCtrl.ForgotPassword)

	e.GET("/farmers", farmerCtrl.Directory)
	e.GET("/farmers/:id", farmerCtrl.Profile)

	// QR targets stay public so a scan works without a session
	e.GET("/verify/:id", passportCtrl.Verify)
	e.GET("/verify/:id/qr", passportCtrl.QR)

	e.GET("/articles/search", articleCtrl.Search)

	// protected surface
	api := e.Group("", middleware.RequireAuth(tm))
	api.GET("/whoami", authCtrl.WhoAmI)

	api.GET("/products", productCtrl.List)
	api.GET("/products/export", productCtrl.Export)

	api.GET("/passport", passportCtrl.Own)
	api.PUT("/passport", passportCtrl.Update)

	// farmer-only mutations
	farm := api.Group("", middleware.RequireRole(entities.RoleFarmer))
	farm.POST("/products", productCtrl.Create)
	farm.PUT("/products/:id", productCtrl.Update)
	farm.DELETE("/products/:id", productCtrl.Delete)
	farm.POST("/articles/ingest", articleCtrl.IngestText)
	farm.POST("/articles/ingest/url", articleCtrl.IngestURL)

	return e
}
