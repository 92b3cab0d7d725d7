package serviceImp

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"agritrust/entities"
	"agritrust/pkg/auth/hash"
	"agritrust/pkg/auth/service"
	"agritrust/pkg/auth/token"
	"agritrust/pkg/form"
)

type fakeRepo struct {
	byEmail map[string]entities.User
	resets  []entities.PasswordReset
}

func newFakeRepo() *fakeRepo { return &fakeRepo{byEmail: map[string]entities.User{}} }

func (f *fakeRepo) Create(u *entities.User) error {
	f.byEmail[u.Email] = *u
	return nil
}

func (f *fakeRepo) FindByEmail(email string) (*entities.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeRepo) FindByID(id string) (*entities.User, error) {
	for _, u := range f.byEmail {
		if u.UserID == id {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) CreateReset(r *entities.PasswordReset) error {
	f.resets = append(f.resets, *r)
	return nil
}

type captureMailer struct{ sent []string }

func (m *captureMailer) SendReset(email, tok string) error {
	m.sent = append(m.sent, email)
	return nil
}

func newTestSvc(repo *fakeRepo, m service.Mailer) service.AuthService {
	return New(repo, hash.New(), token.NewManager("test-secret", time.Hour), m)
}

func signUpValues() form.Values {
	return form.Values{
		"name":     "Jo Farmer",
		"email":    "Jo@Example.com",
		"password": "longenough",
		"role":     "farmer",
	}
}

func TestSignUpThenSignIn(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestSvc(repo, nil)

	sess, errs, err := svc.SignUp(signUpValues())
	if err != nil || errs != nil {
		t.Fatalf("SignUp() = %v, %v", errs, err)
	}
	if sess.User.Email != "jo@example.com" {
		t.Errorf("email not normalized: %q", sess.User.Email)
	}
	if sess.User.PasswordHash == "longenough" || sess.User.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if sess.Token == "" || sess.User.UserID == "" {
		t.Errorf("session = %+v", sess)
	}

	// sign in with a differently-cased address
	sess2, errs, err := svc.SignIn(form.Values{"email": "JO@example.COM", "password": "longenough"})
	if err != nil || errs != nil {
		t.Fatalf("SignIn() = %v, %v", errs, err)
	}
	if sess2.User.UserID != sess.User.UserID {
		t.Error("sign in resolved a different account")
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	svc := newTestSvc(newFakeRepo(), nil)

	if _, _, err := svc.SignUp(signUpValues()); err != nil {
		t.Fatal(err)
	}
	_, errs, err := svc.SignUp(signUpValues())
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Fatalf("got %v, %v, want ErrEmailTaken", errs, err)
	}
}

func TestSignUp_ValidationShortCircuitsStorage(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestSvc(repo, nil)

	_, errs, err := svc.SignUp(form.Values{"name": "Jo", "email": "bad", "password": "short", "role": "farmer"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if errs["email"] == "" || errs["password"] == "" {
		t.Fatalf("errs = %v", errs)
	}
	if len(repo.byEmail) != 0 {
		t.Fatal("rejected sign up must not create an account")
	}
}

func TestSignIn_WrongPassword(t *testing.T) {
	svc := newTestSvc(newFakeRepo(), nil)
	if _, _, err := svc.SignUp(signUpValues()); err != nil {
		t.Fatal(err)
	}

	for _, creds := range []form.Values{
		{"email": "jo@example.com", "password": "wrongwrong"},
		{"email": "nobody@example.com", "password": "longenough"},
	} {
		if _, _, err := svc.SignIn(creds); !errors.Is(err, service.ErrInvalidCredentials) {
			t.Errorf("%v: got %v, want ErrInvalidCredentials", creds["email"], err)
		}
	}
}

func TestForgotPassword_SilentOnUnknownAccount(t *testing.T) {
	repo := newFakeRepo()
	mailer := &captureMailer{}
	svc := newTestSvc(repo, mailer)
	if _, _, err := svc.SignUp(signUpValues()); err != nil {
		t.Fatal(err)
	}

	errs, err := svc.ForgotPassword(form.Values{"email": "jo@example.com"})
	if err != nil || errs != nil {
		t.Fatalf("ForgotPassword() = %v, %v", errs, err)
	}
	if len(repo.resets) != 1 || len(mailer.sent) != 1 {
		t.Fatalf("resets=%d mails=%d, want 1 each", len(repo.resets), len(mailer.sent))
	}
	if repo.resets[0].ExpiresAt.Before(time.Now()) {
		t.Error("reset token already expired")
	}

	// unknown address gets the same quiet success, and no mail
	errs, err = svc.ForgotPassword(form.Values{"email": "ghost@example.com"})
	if err != nil || errs != nil {
		t.Fatalf("unknown account leaked: %v, %v", errs, err)
	}
	if len(mailer.sent) != 1 {
		t.Fatal("mail sent for unknown account")
	}
}
