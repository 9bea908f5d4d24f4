package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/swissquality-storen/web/internal/repositories"
)

// NewsletterRepository persists newsletter signups.
type NewsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository constructs a NewsletterRepository around the shared connection.
func NewNewsletterRepository(db *gorm.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// Insert appends one newsletter signup row. A violation of the unique email
// index surfaces as repositories.ErrAlreadySubscribed.
func (r *NewsletterRepository) Insert(ctx context.Context, signup repositories.NewsletterSignup) error {
	row := newsletterSignupRow{
		ID:        signup.ID,
		Email:     signup.Email,
		CreatedAt: signup.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrAlreadySubscribed
		}
		return fmt.Errorf("insert newsletter signup: %w", err)
	}
	return nil
}
