package jobcard

import (
	"context"

	vo "jobdesk/internal/domain/jobcard/valueobjects"
)

type JobCardRepository interface {
	Save(ctx context.Context, card *JobCard) error
	Update(ctx context.Context, card *JobCard) error
	Delete(ctx context.Context, cardID uint) error
	GetByID(ctx context.Context, cardID uint) (*JobCard, error)
	// GetByTicketNo returns every row sharing the ticket number,
	// ordered item ascending then id ascending.
	GetByTicketNo(ctx context.Context, ticketNo string) ([]*JobCard, error)
	List(ctx context.Context, filter JobCardFilter) ([]*JobCard, int64, error)
	ExistsByTicketNo(ctx context.Context, ticketNo string) (bool, error)
}

type JobCardFilter struct {
	TicketNo *string
	Status   *vo.Status
	Customer *string
	Page     int
	PageSize int
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	Delete(ctx context.Context, attachmentID uint) error
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	GetByJobCardID(ctx context.Context, jobCardID uint) ([]*Attachment, error)
	GetByJobCardIDs(ctx context.Context, jobCardIDs []uint) ([]*Attachment, error)
}
