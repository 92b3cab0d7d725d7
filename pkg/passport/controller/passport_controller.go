package controller

import "github.com/labstack/echo/v4"

type PassportController interface {
	Own(c echo.Context) error
	Update(c echo.Context) error
	Verify(c echo.Context) error
	QR(c echo.Context) error
}
