package models

type JobCardModel struct {
	ID                   uint   `gorm:"primaryKey"`
	TicketNo             string `gorm:"size:50;not null;index"`
	Customer             string `gorm:"size:200;not null"`
	Address              string `gorm:"type:text;not null"`
	Phone                string `gorm:"size:50;not null"`
	Item                 string `gorm:"size:100;not null;index"`
	Serial               string `gorm:"size:100"`
	Config               string `gorm:"type:text"`
	ComplaintDescription string `gorm:"type:text"`
	ComplaintNotes       string `gorm:"type:text"`
	Status               string `gorm:"size:30;not null;index"`
	CreatedAt            int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt            int64  `gorm:"autoUpdateTime:milli;not null"`

	// TicketNo is deliberately not unique: every row of a visit carries
	// the same number. Relationships are managed by application logic,
	// not foreign key constraints.
}

func (JobCardModel) TableName() string {
	return "job_cards"
}

type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	JobCardID    uint   `gorm:"not null;index"`
	FilePath     string `gorm:"size:500;not null"`
	OriginalName string `gorm:"size:255"`
	ContentType  string `gorm:"size:100"`
	Size         int64  `gorm:"not null"`
	UploadedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "job_card_attachments"
}
