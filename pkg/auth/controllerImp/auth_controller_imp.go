package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agritrust/pkg/auth/controller"
	"agritrust/pkg/auth/service"
	"agritrust/pkg/form"
)

const sessionCookie = "agritrust_token"

type authCtrl struct{ svc service.AuthService }

func New(svc service.AuthService) controller.AuthController { return &authCtrl{svc} }

type signUpReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *authCtrl) SignUp(c echo.Context) error {
	var req signUpReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	sess, errs, err := h.svc.SignUp(form.Values{"name": req.Name, "email": req.Email, "password": req.Password, "role": req.Role})
	if errs != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": errs})
	}
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	setSessionCookie(c, sess.Token)
	return c.JSON(http.StatusCreated, sess)
}

type signInReq struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

func (h *authCtrl) SignIn(c echo.Context) error {
	var req signInReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	sess, errs, err := h.svc.SignIn(form.Values{"email": req.Email, "password": req.Password, "rememberMe": req.RememberMe})
	if errs != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": errs})
	}
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	setSessionCookie(c, sess.Token)
	return c.JSON(http.StatusOK, sess)
}

func (h *authCtrl) SignOut(c echo.Context) error {
	c.SetCookie(&http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	return c.JSON(http.StatusOK, map[string]string{"status": "signed out"})
}

func (h *authCtrl) ForgotPassword(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	errs, err := h.svc.ForgotPassword(form.Values{"email": req.Email})
	if errs != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": errs})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "reset email sent if the account exists"})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	u, err := h.svc.UserByID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}

func setSessionCookie(c echo.Context, tok string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    tok,
		Path:     "/",
		Expires:  time.Now().Add(72 * time.Hour),
		HttpOnly: true,
	})
}
