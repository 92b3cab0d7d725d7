// Package hash wraps bcrypt for account passwords.
package hash

import "golang.org/x/crypto/bcrypt"

// Cost 12 keeps hashing under ~250ms on current hardware.
const DefaultCost = 12

type Hasher struct {
	cost int
}

func New() *Hasher { return &Hasher{cost: DefaultCost} }

func (h *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *Hasher) Verify(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
