// Package submissions implements the contact and newsletter form logic:
// validation, sanitization, spam filtering, persistence, and best-effort
// transactional email.
package submissions

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/swissquality-storen/web/internal/mailer"
	"github.com/swissquality-storen/web/internal/platform/metrics"
	"github.com/swissquality-storen/web/internal/repositories"
)

var (
	errContactRepositoryRequired    = errors.New("submission service: contact repository is required")
	errNewsletterRepositoryRequired = errors.New("submission service: newsletter repository is required")
	errMailerRequired               = errors.New("submission service: mailer is required")
)

// ErrAlreadySubscribed indicates the newsletter email is already registered.
var ErrAlreadySubscribed = errors.New("submission service: already subscribed")

const (
	maxContactFieldLength = 5000
	maxEmailLength        = 255
)

// Local part without whitespace or @, domain with at least one dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError reports a rejected input field with a user-facing message.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("submission validation: %s: %s", e.Field, e.Message)
}

// ContactInput is the raw contact form payload.
type ContactInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Location string `json:"location"`
	Message  string `json:"message"`
	Honeypot string `json:"website"`
}

// NewsletterInput is the raw newsletter signup payload.
type NewsletterInput struct {
	Email    string `json:"email"`
	Honeypot string `json:"website"`
}

// ContactResult reports the outcome of a contact submission.
type ContactResult struct {
	ID        string
	Discarded bool
}

// NewsletterResult reports the outcome of a newsletter signup.
type NewsletterResult struct {
	Discarded bool
}

// ServiceDeps wires the persistence and email dependencies.
type ServiceDeps struct {
	Contacts   repositories.ContactRepository
	Newsletter repositories.NewsletterRepository
	Mailer     mailer.Mailer
	Logger     *zap.Logger
	Metrics    *metrics.Recorder
	Clock      func() time.Time
	IDGen      func() string
}

// Service orchestrates form submissions.
type Service struct {
	contacts   repositories.ContactRepository
	newsletter repositories.NewsletterRepository
	mailer     mailer.Mailer
	logger     *zap.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
	newID      func() string
}

// NewService constructs a Service enforcing dependency validation.
func NewService(deps ServiceDeps) (*Service, error) {
	if deps.Contacts == nil {
		return nil, errContactRepositoryRequired
	}
	if deps.Newsletter == nil {
		return nil, errNewsletterRepositoryRequired
	}
	if deps.Mailer == nil {
		return nil, errMailerRequired
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	newID := deps.IDGen
	if newID == nil {
		newID = func() string { return ulid.Make().String() }
	}
	return &Service{
		contacts:   deps.Contacts,
		newsletter: deps.Newsletter,
		mailer:     deps.Mailer,
		logger:     logger,
		metrics:    deps.Metrics,
		now:        now,
		newID:      newID,
	}, nil
}

// SubmitContact validates, persists, and announces one contact request.
// A filled honeypot field discards the submission without error so bots
// receive the same response as legitimate visitors.
func (s *Service) SubmitContact(ctx context.Context, input ContactInput) (ContactResult, error) {
	if strings.TrimSpace(input.Honeypot) != "" {
		s.metrics.IncHoneypotHit()
		s.metrics.IncSubmission("contact", "discarded")
		s.logger.Info("contact submission discarded", zap.String("reason", "honeypot"))
		return ContactResult{Discarded: true}, nil
	}

	submission := repositories.ContactSubmission{
		ID:        s.newID(),
		Name:      sanitizeText(input.Name),
		Email:     sanitizeText(input.Email),
		Phone:     sanitizeText(input.Phone),
		Service:   sanitizeText(input.Service),
		Location:  sanitizeText(input.Location),
		Message:   sanitizeText(input.Message),
		CreatedAt: s.now().UTC(),
	}

	if err := validateContact(submission); err != nil {
		s.metrics.IncSubmission("contact", "invalid")
		return ContactResult{}, err
	}

	if err := s.contacts.Insert(ctx, submission); err != nil {
		s.metrics.IncSubmission("contact", "error")
		return ContactResult{}, fmt.Errorf("persist contact submission: %w", err)
	}
	s.metrics.IncSubmission("contact", "saved")

	// Email is best effort: the row is the source of truth.
	if err := s.mailer.SendContactNotification(submission); err != nil {
		s.metrics.IncEmailFailure()
		s.logger.Error("contact notification email failed",
			zap.String("submission_id", submission.ID),
			zap.Error(err),
		)
	}

	return ContactResult{ID: submission.ID}, nil
}

// SubmitNewsletter validates and persists one newsletter signup.
func (s *Service) SubmitNewsletter(ctx context.Context, input NewsletterInput) (NewsletterResult, error) {
	if strings.TrimSpace(input.Honeypot) != "" {
		s.metrics.IncHoneypotHit()
		s.metrics.IncSubmission("newsletter", "discarded")
		s.logger.Info("newsletter signup discarded", zap.String("reason", "honeypot"))
		return NewsletterResult{Discarded: true}, nil
	}

	email := sanitizeEmail(input.Email)
	if err := validateEmail(email); err != nil {
		s.metrics.IncSubmission("newsletter", "invalid")
		return NewsletterResult{}, err
	}

	signup := repositories.NewsletterSignup{
		ID:        s.newID(),
		Email:     email,
		CreatedAt: s.now().UTC(),
	}

	if err := s.newsletter.Insert(ctx, signup); err != nil {
		if errors.Is(err, repositories.ErrAlreadySubscribed) {
			s.metrics.IncSubmission("newsletter", "duplicate")
			return NewsletterResult{}, ErrAlreadySubscribed
		}
		s.metrics.IncSubmission("newsletter", "error")
		return NewsletterResult{}, fmt.Errorf("persist newsletter signup: %w", err)
	}
	s.metrics.IncSubmission("newsletter", "saved")

	if err := s.mailer.SendNewsletterWelcome(signup.Email); err != nil {
		s.metrics.IncEmailFailure()
		s.logger.Error("newsletter welcome email failed",
			zap.String("signup_id", signup.ID),
			zap.Error(err),
		)
	}

	return NewsletterResult{}, nil
}

func validateContact(submission repositories.ContactSubmission) error {
	if submission.Name == "" {
		return &ValidationError{Field: "name", Message: "Bitte geben Sie Ihren Namen an."}
	}
	if submission.Email == "" {
		return &ValidationError{Field: "email", Message: "Bitte geben Sie Ihre E-Mail-Adresse an."}
	}
	if !emailPattern.MatchString(submission.Email) {
		return &ValidationError{Field: "email", Message: "Bitte geben Sie eine gültige E-Mail-Adresse an."}
	}
	if submission.Message == "" {
		return &ValidationError{Field: "message", Message: "Bitte geben Sie eine Nachricht ein."}
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "Bitte geben Sie Ihre E-Mail-Adresse an."}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "Bitte geben Sie eine gültige E-Mail-Adresse an."}
	}
	return nil
}

// sanitizeText trims whitespace, strips angle brackets, and caps the length.
func sanitizeText(value string) string {
	value = strings.TrimSpace(value)
	value = strings.NewReplacer("<", "", ">", "").Replace(value)
	if len(value) > maxContactFieldLength {
		value = value[:maxContactFieldLength]
	}
	return value
}

// sanitizeEmail normalises an email address for storage and comparison.
func sanitizeEmail(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.NewReplacer("<", "", ">", "").Replace(value)
	if len(value) > maxEmailLength {
		value = value[:maxEmailLength]
	}
	return value
}
