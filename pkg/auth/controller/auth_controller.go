package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	SignUp(c echo.Context) error
	SignIn(c echo.Context) error
	SignOut(c echo.Context) error
	ForgotPassword(c echo.Context) error
	WhoAmI(c echo.Context) error
}
