package serviceImp

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agritrust/entities"
	"agritrust/pkg/auth/hash"
	"agritrust/pkg/auth/repository"
	"agritrust/pkg/auth/service"
	"agritrust/pkg/auth/token"
	"agritrust/pkg/form"
)

type authSvc struct {
	r      repository.UserRepository
	hasher *hash.Hasher
	tokens *token.Manager
	mailer service.Mailer
}

func New(r repository.UserRepository, h *hash.Hasher, tm *token.Manager, m service.Mailer) service.AuthService {
	if m == nil {
		m = logMailer{}
	}
	return &authSvc{r: r, hasher: h, tokens: tm, mailer: m}
}

func (s *authSvc) SignUp(values form.Values) (*service.Session, form.Errors, error) {
	rec, errs := form.SignUpSchema().Validate(values)
	if errs != nil {
		return nil, errs, nil
	}

	email := strings.ToLower(rec["email"].(string))
	if _, err := s.r.FindByEmail(email); err == nil {
		return nil, nil, service.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	hashed, err := s.hasher.Hash(rec["password"].(string))
	if err != nil {
		return nil, nil, err
	}
	u := &entities.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: hashed,
		Name:         rec["name"].(string),
		Role:         rec["role"].(string),
	}
	if err := s.r.Create(u); err != nil {
		return nil, nil, err
	}
	return s.session(u)
}

func (s *authSvc) SignIn(values form.Values) (*service.Session, form.Errors, error) {
	rec, errs := form.SignInSchema().Validate(values)
	if errs != nil {
		return nil, errs, nil
	}

	u, err := s.r.FindByEmail(strings.ToLower(rec["email"].(string)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, service.ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !s.hasher.Verify(rec["password"].(string), u.PasswordHash) {
		return nil, nil, service.ErrInvalidCredentials
	}
	return s.session(u)
}

func (s *authSvc) ForgotPassword(values form.Values) (form.Errors, error) {
	rec, errs := form.ForgotPasswordSchema().Validate(values)
	if errs != nil {
		return errs, nil
	}

	email := strings.ToLower(rec["email"].(string))
	u, err := s.r.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// respond the same whether or not the account exists
			return nil, nil
		}
		return nil, err
	}

	pr := &entities.PasswordReset{
		Token:     uuid.NewString(),
		UserID:    u.UserID,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := s.r.CreateReset(pr); err != nil {
		return nil, err
	}
	return nil, s.mailer.SendReset(email, pr.Token)
}

func (s *authSvc) UserByID(id string) (*entities.User, error) {
	return s.r.FindByID(id)
}

func (s *authSvc) session(u *entities.User) (*service.Session, form.Errors, error) {
	t, err := s.tokens.Generate(u.UserID, u.Email, u.Role)
	if err != nil {
		return nil, nil, err
	}
	return &service.Session{User: u, Token: t}, nil, nil
}

type logMailer struct{}

func (logMailer) SendReset(email, tok string) error {
	log.Printf("[mail] password reset for %s token=%s", email, tok)
	return nil
}
