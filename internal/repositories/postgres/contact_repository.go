package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/swissquality-storen/web/internal/repositories"
)

// ContactRepository persists contact form submissions.
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository constructs a ContactRepository around the shared connection.
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Insert appends one contact submission row.
func (r *ContactRepository) Insert(ctx context.Context, submission repositories.ContactSubmission) error {
	row := contactSubmissionRow{
		ID:        submission.ID,
		Name:      submission.Name,
		Email:     submission.Email,
		Phone:     submission.Phone,
		Service:   submission.Service,
		Location:  submission.Location,
		Message:   submission.Message,
		CreatedAt: submission.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}
