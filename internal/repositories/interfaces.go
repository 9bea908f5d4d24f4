// Package repositories defines the persistence contracts for form submissions.
package repositories

import (
	"context"
	"time"
)

// ContactSubmission is a persisted contact form entry. Rows are append-only;
// retention is an administrative concern outside this system.
type ContactSubmission struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Service   string
	Location  string
	Message   string
	CreatedAt time.Time
}

// NewsletterSignup is a persisted newsletter subscription keyed by email.
type NewsletterSignup struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Insert(ctx context.Context, submission ContactSubmission) error
}

// NewsletterRepository persists newsletter signups. Insert returns
// ErrAlreadySubscribed when the email already exists.
type NewsletterRepository interface {
	Insert(ctx context.Context, signup NewsletterSignup) error
}
