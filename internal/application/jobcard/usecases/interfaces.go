package usecases

import (
	"context"
	"mime/multipart"

	"jobdesk/internal/application/jobcard/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type EditTicketExecutor interface {
	Execute(ctx context.Context, cmd EditTicketCommand) (*EditTicketResult, error)
}

type ListJobCardsExecutor interface {
	Execute(ctx context.Context, query ListJobCardsQuery) (*ListJobCardsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type DeleteJobCardExecutor interface {
	Execute(ctx context.Context, cmd DeleteJobCardCommand) (*DeleteJobCardResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

// StoredFile describes an upload after the file store has written it.
type StoredFile struct {
	Path         string
	OriginalName string
	ContentType  string
	Size         int64
}

// FileStore persists uploaded images and removes backing files.
// Remove is idempotent: a missing file is not an error.
type FileStore interface {
	Save(ctx context.Context, file *multipart.FileHeader) (*StoredFile, error)
	Remove(ctx context.Context, path string) error
}

// TransactionManager runs record writes in one transaction. File effects
// stay outside the rollback scope and are best effort.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
