package usecases

import (
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/application/jobcard/dto"
	"jobdesk/internal/domain/jobcard"
	vo "jobdesk/internal/domain/jobcard/valueobjects"
	"jobdesk/internal/shared/errors"
)

func newCreateTicketUseCase(
	jobCardRepo *mockJobCardRepository,
	attachmentRepo *mockAttachmentRepository,
	allocator *mockNumberAllocator,
	fileStore *mockFileStore,
) *CreateTicketUseCase {
	return NewCreateTicketUseCase(
		jobCardRepo,
		attachmentRepo,
		allocator,
		fileStore,
		&mockTxManager{},
		&mockLogger{},
	)
}

func TestCreateTicketCreatesOneRowPerComplaint(t *testing.T) {
	var saved []*jobcard.JobCard
	nextID := uint(0)

	jobCardRepo := &mockJobCardRepository{
		SaveFunc: func(ctx context.Context, card *jobcard.JobCard) error {
			nextID++
			require.NoError(t, card.SetID(nextID))
			saved = append(saved, card)
			return nil
		},
	}

	uc := newCreateTicketUseCase(jobCardRepo, &mockAttachmentRepository{}, &mockNumberAllocator{}, &mockFileStore{})

	cmd := CreateTicketCommand{
		Customer: "Jane Doe",
		Address:  "12 Main St",
		Phone:    "555-0100",
		Items: []dto.ItemGroupInput{
			{
				Item:   "Mouse",
				Serial: "SN-001",
				Complaints: []dto.ComplaintInput{
					{Description: "not clicking"},
					{Description: "scroll wheel loose"},
				},
			},
			{
				Item:   "Laptop",
				Config: "8GB RAM",
				Complaints: []dto.ComplaintInput{
					{Description: "slow boot", Notes: "suspect disk"},
				},
			},
		},
	}

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, 3, result.RowsCreated, "one row per complaint")
	assert.Equal(t, "TK-TESTTEST", result.TicketNo)
	require.Len(t, saved, 3)

	for _, card := range saved {
		assert.Equal(t, result.TicketNo, card.TicketNo(), "all rows share the ticket number")
		assert.Equal(t, "Jane Doe", card.Customer())
		assert.Equal(t, vo.StatusLogged, card.Status())
	}

	assert.Equal(t, "not clicking", saved[0].ComplaintDescription())
	assert.Equal(t, "SN-001", saved[0].Serial())
	assert.Equal(t, "SN-001", saved[1].Serial(), "serial is shared across the item's rows")
	assert.Equal(t, "8GB RAM", saved[2].Config())
}

func TestCreateTicketStoresUploadsPerComplaint(t *testing.T) {
	var savedAttachments []*jobcard.Attachment
	nextID := uint(0)

	jobCardRepo := &mockJobCardRepository{
		SaveFunc: func(ctx context.Context, card *jobcard.JobCard) error {
			nextID++
			return card.SetID(nextID)
		},
	}
	attachmentRepo := &mockAttachmentRepository{
		SaveFunc: func(ctx context.Context, attachment *jobcard.Attachment) error {
			savedAttachments = append(savedAttachments, attachment)
			return nil
		},
	}

	uc := newCreateTicketUseCase(jobCardRepo, attachmentRepo, &mockNumberAllocator{}, &mockFileStore{})

	cmd := CreateTicketCommand{
		Customer: "Jane Doe",
		Address:  "12 Main St",
		Phone:    "555-0100",
		Items: []dto.ItemGroupInput{
			{
				Item: "Printer",
				Complaints: []dto.ComplaintInput{
					{
						Description: "paper jam",
						Uploads: []*multipart.FileHeader{
							{Filename: "jam1.png", Size: 100},
							{Filename: "jam2.png", Size: 200},
						},
					},
					{Description: "faded print"},
				},
			},
		},
	}

	_, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	require.Len(t, savedAttachments, 2)
	assert.Equal(t, uint(1), savedAttachments[0].JobCardID(), "uploads attach to the first complaint's row")
	assert.Equal(t, uint(1), savedAttachments[1].JobCardID())
}

func TestCreateTicketFailedUploadDoesNotAbort(t *testing.T) {
	nextID := uint(0)
	jobCardRepo := &mockJobCardRepository{
		SaveFunc: func(ctx context.Context, card *jobcard.JobCard) error {
			nextID++
			return card.SetID(nextID)
		},
	}
	fileStore := &mockFileStore{
		SaveFunc: func(ctx context.Context, file *multipart.FileHeader) (*StoredFile, error) {
			return nil, fmt.Errorf("disk full")
		},
	}

	uc := newCreateTicketUseCase(jobCardRepo, &mockAttachmentRepository{}, &mockNumberAllocator{}, fileStore)

	cmd := CreateTicketCommand{
		Customer: "Jane Doe",
		Address:  "12 Main St",
		Phone:    "555-0100",
		Items: []dto.ItemGroupInput{
			{
				Item: "Mouse",
				Complaints: []dto.ComplaintInput{
					{Description: "not clicking", Uploads: []*multipart.FileHeader{{Filename: "a.png", Size: 1}}},
				},
			},
		},
	}

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowsCreated)
}

func TestCreateTicketValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{"missing customer", CreateTicketCommand{Address: "12 Main St", Phone: "555-0100"}},
		{"missing address", CreateTicketCommand{Customer: "Jane Doe", Phone: "555-0100"}},
		{"missing phone", CreateTicketCommand{Customer: "Jane Doe", Address: "12 Main St"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocated := false
			allocator := &mockNumberAllocator{
				AllocateFunc: func(ctx context.Context) (string, error) {
					allocated = true
					return "TK-TESTTEST", nil
				},
			}
			saves := 0
			jobCardRepo := &mockJobCardRepository{
				SaveFunc: func(ctx context.Context, card *jobcard.JobCard) error {
					saves++
					return nil
				},
			}

			uc := newCreateTicketUseCase(jobCardRepo, &mockAttachmentRepository{}, allocator, &mockFileStore{})

			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.False(t, allocated, "validation failures abort before allocation")
			assert.Zero(t, saves, "validation failures abort before any writes")
		})
	}
}

func TestCreateTicketAllocatorFailure(t *testing.T) {
	allocator := &mockNumberAllocator{
		AllocateFunc: func(ctx context.Context) (string, error) {
			return "", fmt.Errorf("store unavailable")
		},
	}

	uc := newCreateTicketUseCase(&mockJobCardRepository{}, &mockAttachmentRepository{}, allocator, &mockFileStore{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Customer: "Jane Doe",
		Address:  "12 Main St",
		Phone:    "555-0100",
	})
	assert.Error(t, err)
}

func TestCreateTicketSaveFailureAbortsTransaction(t *testing.T) {
	// The first row saves and stores its upload, the second row fails.
	saves := 0
	jobCardRepo := &mockJobCardRepository{
		SaveFunc: func(ctx context.Context, card *jobcard.JobCard) error {
			saves++
			if saves > 1 {
				return fmt.Errorf("connection lost")
			}
			return card.SetID(uint(saves))
		},
	}
	fileStore := &mockFileStore{}

	uc := newCreateTicketUseCase(jobCardRepo, &mockAttachmentRepository{}, &mockNumberAllocator{}, fileStore)

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Customer: "Jane Doe",
		Address:  "12 Main St",
		Phone:    "555-0100",
		Items: []dto.ItemGroupInput{
			{
				Item: "Mouse",
				Complaints: []dto.ComplaintInput{
					{Description: "not clicking", Uploads: []*multipart.FileHeader{{Filename: "a.png", Size: 1}}},
					{Description: "scroll wheel loose"},
				},
			},
		},
	})
	require.Error(t, err)
	assert.Equal(t, []string{"uploads/jobcards/a.png"}, fileStore.removed,
		"files written before the rollback are reclaimed")
}
