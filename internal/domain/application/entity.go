package application

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyFullName = errors.New("full name is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("email is malformed")
	ErrEmptyPhone    = errors.New("phone is required")
)

type Status string

const (
	// Applications are append-only; review of submissions happens in a
	// back-office process outside this service, so "pending" is the
	// only status ever written here.
	StatusPending Status = "pending"
)

// GuideApplication is a prospective guide's submission, persisted to
// the external database keyed by a generated entry id.
type GuideApplication struct {
	id          uuid.UUID
	fullName    string
	email       string
	phone       string
	city        string
	experience  string
	submittedAt time.Time
	status      Status
}

func NewGuideApplication(fullName, email, phone, city, experience string, now time.Time) (*GuideApplication, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if fullName == "" {
		return nil, ErrEmptyFullName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}

	return &GuideApplication{
		id:          uuid.New(),
		fullName:    fullName,
		email:       email,
		phone:       phone,
		city:        strings.TrimSpace(city),
		experience:  strings.TrimSpace(experience),
		submittedAt: now,
		status:      StatusPending,
	}, nil
}

func (a *GuideApplication) ID() uuid.UUID          { return a.id }
func (a *GuideApplication) FullName() string       { return a.fullName }
func (a *GuideApplication) Email() string          { return a.email }
func (a *GuideApplication) Phone() string          { return a.phone }
func (a *GuideApplication) City() string           { return a.city }
func (a *GuideApplication) Experience() string     { return a.experience }
func (a *GuideApplication) SubmittedAt() time.Time { return a.submittedAt }
func (a *GuideApplication) Status() Status         { return a.status }
