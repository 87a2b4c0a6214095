package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/domain/jobcard"
	vo "jobdesk/internal/domain/jobcard/valueobjects"
	"jobdesk/internal/shared/errors"
)

func TestDeleteJobCard(t *testing.T) {
	row := reconstructRow(t, 1, vo.ItemMouse, "not clicking")

	var deletedRows []uint
	jobCardRepo := &mockJobCardRepository{
		GetByIDFunc: func(ctx context.Context, cardID uint) (*jobcard.JobCard, error) {
			if cardID == 1 {
				return row, nil
			}
			return nil, nil
		},
		DeleteFunc: func(ctx context.Context, cardID uint) error {
			deletedRows = append(deletedRows, cardID)
			return nil
		},
	}

	var deletedAttachments []uint
	attachmentRepo := &mockAttachmentRepository{
		GetByJobCardIDFunc: func(ctx context.Context, jobCardID uint) ([]*jobcard.Attachment, error) {
			return []*jobcard.Attachment{reconstructAttachment(t, 10, jobCardID)}, nil
		},
		DeleteFunc: func(ctx context.Context, attachmentID uint) error {
			deletedAttachments = append(deletedAttachments, attachmentID)
			return nil
		},
	}
	fileStore := &mockFileStore{}

	uc := NewDeleteJobCardUseCase(jobCardRepo, attachmentRepo, fileStore, &mockTxManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), DeleteJobCardCommand{JobCardID: 1})
	require.NoError(t, err)

	assert.Equal(t, []uint{1}, deletedRows)
	assert.Equal(t, []uint{10}, deletedAttachments)
	assert.Len(t, fileStore.removed, 1, "backing files go with the records")
	assert.Equal(t, 1, result.AttachmentsRemoved)
}

func TestDeleteJobCardNotFound(t *testing.T) {
	uc := NewDeleteJobCardUseCase(&mockJobCardRepository{}, &mockAttachmentRepository{}, &mockFileStore{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), DeleteJobCardCommand{JobCardID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteJobCardFileRemovalFailureDoesNotBlock(t *testing.T) {
	row := reconstructRow(t, 1, vo.ItemMouse, "not clicking")

	rowDeleted := false
	jobCardRepo := &mockJobCardRepository{
		GetByIDFunc: func(ctx context.Context, cardID uint) (*jobcard.JobCard, error) {
			return row, nil
		},
		DeleteFunc: func(ctx context.Context, cardID uint) error {
			rowDeleted = true
			return nil
		},
	}
	attachmentRepo := &mockAttachmentRepository{
		GetByJobCardIDFunc: func(ctx context.Context, jobCardID uint) ([]*jobcard.Attachment, error) {
			return []*jobcard.Attachment{reconstructAttachment(t, 10, jobCardID)}, nil
		},
	}
	fileStore := &mockFileStore{
		RemoveFunc: func(ctx context.Context, path string) error {
			return errors.NewStorageError("permission denied")
		},
	}

	uc := NewDeleteJobCardUseCase(jobCardRepo, attachmentRepo, fileStore, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), DeleteJobCardCommand{JobCardID: 1})
	require.NoError(t, err, "file removal failures are logged, not raised")
	assert.True(t, rowDeleted)
}

func TestDeleteTicket(t *testing.T) {
	rows := []*jobcard.JobCard{
		reconstructRow(t, 1, vo.ItemMouse, "not clicking"),
		reconstructRow(t, 2, vo.ItemLaptop, "slow boot"),
	}

	var deletedRows []uint
	jobCardRepo := &mockJobCardRepository{
		GetByTicketNoFunc: func(ctx context.Context, ticketNo string) ([]*jobcard.JobCard, error) {
			return rows, nil
		},
		DeleteFunc: func(ctx context.Context, cardID uint) error {
			deletedRows = append(deletedRows, cardID)
			return nil
		},
	}

	uc := NewDeleteTicketUseCase(jobCardRepo, &mockAttachmentRepository{}, &mockFileStore{}, &mockTxManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), DeleteTicketCommand{TicketNo: editTestTicketNo})
	require.NoError(t, err)

	assert.Equal(t, []uint{1, 2}, deletedRows, "every row of the ticket goes")
	assert.Equal(t, 2, result.RowsDeleted)
}

func TestDeleteTicketNotFound(t *testing.T) {
	uc := NewDeleteTicketUseCase(&mockJobCardRepository{}, &mockAttachmentRepository{}, &mockFileStore{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), DeleteTicketCommand{TicketNo: "TK-MISSING1"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
