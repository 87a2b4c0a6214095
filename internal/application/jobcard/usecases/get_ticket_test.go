package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/domain/jobcard"
	vo "jobdesk/internal/domain/jobcard/valueobjects"
	"jobdesk/internal/shared/errors"
)

func getTestRow(t *testing.T, id uint, item vo.Item, serial, complaint string) *jobcard.JobCard {
	t.Helper()
	now := time.Now()
	row, err := jobcard.ReconstructJobCard(
		id, "TK-AAAA1111", "Jane Doe", "12 Main St", "555-0100",
		item, serial, "", complaint, "", vo.StatusLogged, now, now,
	)
	require.NoError(t, err)
	return row
}

func TestGetTicketGroupsRowsByItem(t *testing.T) {
	// Repository order: item asc, id asc.
	rows := []*jobcard.JobCard{
		getTestRow(t, 2, vo.ItemLaptop, "SN-L1", "slow boot"),
		getTestRow(t, 1, vo.ItemMouse, "SN-M1", "not clicking"),
		getTestRow(t, 3, vo.ItemMouse, "SN-M1", "scroll wheel loose"),
	}

	jobCardRepo := &mockJobCardRepository{
		GetByTicketNoFunc: func(ctx context.Context, ticketNo string) ([]*jobcard.JobCard, error) {
			assert.Equal(t, "TK-AAAA1111", ticketNo)
			return rows, nil
		},
	}

	uc := NewGetTicketUseCase(jobCardRepo, &mockAttachmentRepository{}, &mockLogger{})

	ticket, err := uc.Execute(context.Background(), GetTicketQuery{TicketNo: "TK-AAAA1111"})
	require.NoError(t, err)

	assert.Equal(t, "TK-AAAA1111", ticket.TicketNo)
	assert.Equal(t, "Jane Doe", ticket.Customer)
	assert.Equal(t, "12 Main St", ticket.Address)
	assert.Equal(t, "555-0100", ticket.Phone)

	require.Len(t, ticket.Items, 2, "each item appears once")
	assert.Equal(t, "Laptop", ticket.Items[0].Item)
	require.Len(t, ticket.Items[0].Complaints, 1)

	assert.Equal(t, "Mouse", ticket.Items[1].Item)
	assert.Equal(t, "SN-M1", ticket.Items[1].Serial)
	require.Len(t, ticket.Items[1].Complaints, 2)
	assert.Equal(t, uint(1), ticket.Items[1].Complaints[0].ID, "complaints keep creation order")
	assert.Equal(t, "not clicking", ticket.Items[1].Complaints[0].Description)
	assert.Equal(t, "scroll wheel loose", ticket.Items[1].Complaints[1].Description)
}

func TestGetTicketIncludesAttachments(t *testing.T) {
	rows := []*jobcard.JobCard{
		getTestRow(t, 1, vo.ItemMouse, "", "not clicking"),
	}

	jobCardRepo := &mockJobCardRepository{
		GetByTicketNoFunc: func(ctx context.Context, ticketNo string) ([]*jobcard.JobCard, error) {
			return rows, nil
		},
	}
	attachmentRepo := &mockAttachmentRepository{
		GetByJobCardIDsFunc: func(ctx context.Context, jobCardIDs []uint) ([]*jobcard.Attachment, error) {
			assert.Equal(t, []uint{1}, jobCardIDs, "attachments are loaded in one batch")
			return []*jobcard.Attachment{reconstructAttachment(t, 10, 1)}, nil
		},
	}

	uc := NewGetTicketUseCase(jobCardRepo, attachmentRepo, &mockLogger{})

	ticket, err := uc.Execute(context.Background(), GetTicketQuery{TicketNo: "TK-AAAA1111"})
	require.NoError(t, err)
	require.Len(t, ticket.Items, 1)
	require.Len(t, ticket.Items[0].Complaints, 1)
	require.Len(t, ticket.Items[0].Complaints[0].Attachments, 1)
	assert.Equal(t, uint(10), ticket.Items[0].Complaints[0].Attachments[0].ID)
}

func TestGetTicketNotFound(t *testing.T) {
	uc := NewGetTicketUseCase(&mockJobCardRepository{}, &mockAttachmentRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetTicketQuery{TicketNo: "TK-MISSING1"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetTicketRequiresNumber(t *testing.T) {
	uc := NewGetTicketUseCase(&mockJobCardRepository{}, &mockAttachmentRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetTicketQuery{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
