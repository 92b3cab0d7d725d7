package serviceImp

import (
	"errors"

	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"agritrust/entities"
	"agritrust/pkg/passport/repository"
	"agritrust/pkg/passport/service"
)

type passportSvc struct {
	r       repository.PassportRepository
	baseURL string
}

func New(r repository.PassportRepository, baseURL string) service.PassportService {
	return &passportSvc{r: r, baseURL: baseURL}
}

func (s *passportSvc) Own(userID string) (*entities.Passport, error) {
	p, err := s.r.Find(userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	p = defaultPassport(userID)
	if err := s.r.Upsert(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *passportSvc) Update(userID string, in *entities.Passport) (*entities.Passport, error) {
	in.UserID = userID
	if err := s.r.Upsert(in); err != nil {
		return nil, err
	}
	return s.r.Find(userID)
}

func (s *passportSvc) Verify(userID string) (*service.View, error) {
	u, err := s.r.FindUser(userID)
	if err != nil {
		return nil, err
	}
	p, err := s.r.Find(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		p = defaultPassport(userID)
	}
	return &service.View{Name: u.Name, Role: u.Role, Image: u.Image, Passport: p}, nil
}

func (s *passportSvc) QRPNG(userID string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(s.baseURL+"/verify/"+userID, qrcode.Medium, size)
}

func defaultPassport(userID string) *entities.Passport {
	return &entities.Passport{
		UserID:         userID,
		Achievements:   []string{},
		Certifications: []string{},
	}
}
