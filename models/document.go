package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category classifies a stored document.
type Category string

const (
	CategoryResume       Category = "resume"
	CategoryDegrees      Category = "degrees"
	CategoryCertificates Category = "certificates"
	CategoryTranscripts  Category = "transcripts"
	CategoryHeadshots    Category = "headshots"
	CategoryOthers       Category = "others"
)

// Categories lists every valid document category.
var Categories = []Category{
	CategoryResume,
	CategoryDegrees,
	CategoryCertificates,
	CategoryTranscripts,
	CategoryHeadshots,
	CategoryOthers,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Document is the metadata record for an uploaded file. UserID is set at
// creation and never changes; a document is visible and deletable only to
// its owner. FileName holds the sanitized name used for storage metadata,
// OriginalName the user-supplied one kept for display.
type Document struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	FileName     string    `gorm:"size:255;not null" json:"fileName"`
	OriginalName string    `gorm:"size:255;not null" json:"originalName"`
	FileSize     int64     `gorm:"not null" json:"fileSize"`
	MimeType     string    `gorm:"size:128" json:"mimeType"`
	Category     Category  `gorm:"size:32;not null;index" json:"category"`
	FileURL      string    `gorm:"size:512;not null" json:"fileUrl"`
	StorageKey   string    `gorm:"size:255;not null" json:"-"`
	ThumbURL     string    `gorm:"size:512" json:"thumbUrl,omitempty"`
	UploadedAt   time.Time `gorm:"autoCreateTime;index" json:"uploadedAt"`
	UserID       string    `gorm:"size:36;not null;index" json:"userId"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
