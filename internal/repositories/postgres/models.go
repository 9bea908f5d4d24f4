package postgres

import "time"

type contactSubmissionRow struct {
	ID        string `gorm:"primaryKey;size:26"`
	Name      string `gorm:"size:5000;not null"`
	Email     string `gorm:"size:5000;not null"`
	Phone     string `gorm:"size:5000"`
	Service   string `gorm:"size:5000"`
	Location  string `gorm:"size:5000"`
	Message   string `gorm:"size:5000;not null"`
	CreatedAt time.Time
}

func (contactSubmissionRow) TableName() string { return "contact_submissions" }

type newsletterSignupRow struct {
	ID        string `gorm:"primaryKey;size:26"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time
}

func (newsletterSignupRow) TableName() string { return "newsletter_signups" }
