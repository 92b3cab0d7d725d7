package controller

import "github.com/labstack/echo/v4"

type FarmerController interface {
	Directory(c echo.Context) error
	Profile(c echo.Context) error
}
