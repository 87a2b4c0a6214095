package jobcard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "jobdesk/internal/domain/jobcard/valueobjects"
)

func newTestJobCard(t *testing.T) *JobCard {
	t.Helper()
	jc, err := NewJobCard(
		"Jane Doe",
		"12 Main St",
		"555-0100",
		vo.ItemMouse,
		"SN-001",
		"wireless",
		"not clicking",
		"left button",
	)
	require.NoError(t, err)
	return jc
}

func TestNewJobCard(t *testing.T) {
	tests := []struct {
		name     string
		customer string
		address  string
		phone    string
		item     vo.Item
		wantErr  string
	}{
		{"valid card", "Jane Doe", "12 Main St", "555-0100", vo.ItemMouse, ""},
		{"missing customer", "", "12 Main St", "555-0100", vo.ItemMouse, "customer name is required"},
		{"blank customer", "   ", "12 Main St", "555-0100", vo.ItemMouse, "customer name is required"},
		{"missing address", "Jane Doe", "", "555-0100", vo.ItemMouse, "address is required"},
		{"missing phone", "Jane Doe", "12 Main St", "", vo.ItemMouse, "phone is required"},
		{"missing item", "Jane Doe", "12 Main St", "555-0100", vo.Item(""), "item is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jc, err := NewJobCard(tt.customer, tt.address, tt.phone, tt.item, "", "", "", "")
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusLogged, jc.Status())
			assert.Zero(t, jc.ID())
			assert.Empty(t, jc.TicketNo())
			assert.False(t, jc.CreatedAt().IsZero())
		})
	}
}

func TestNewJobCardTrimsFields(t *testing.T) {
	jc, err := NewJobCard("  Jane Doe ", " 12 Main St ", " 555-0100 ", vo.ItemLaptop, " SN-9 ", " 8GB ", " slow boot ", " ")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", jc.Customer())
	assert.Equal(t, "12 Main St", jc.Address())
	assert.Equal(t, "555-0100", jc.Phone())
	assert.Equal(t, "SN-9", jc.Serial())
	assert.Equal(t, "8GB", jc.Config())
	assert.Equal(t, "slow boot", jc.ComplaintDescription())
	assert.Empty(t, jc.ComplaintNotes())
}

func TestJobCardSetID(t *testing.T) {
	jc := newTestJobCard(t)

	require.NoError(t, jc.SetID(42))
	assert.Equal(t, uint(42), jc.ID())

	assert.Error(t, jc.SetID(43), "id is set once")
	assert.Error(t, newTestJobCard(t).SetID(0))
}

func TestJobCardSetTicketNo(t *testing.T) {
	jc := newTestJobCard(t)

	require.NoError(t, jc.SetTicketNo("TK-7GQ2M1XC"))
	assert.Equal(t, "TK-7GQ2M1XC", jc.TicketNo())

	assert.Error(t, jc.SetTicketNo("TK-AAAAAAAA"), "ticket number is set once")
	assert.Error(t, newTestJobCard(t).SetTicketNo(""))
}

func TestJobCardUpdateCustomerInfo(t *testing.T) {
	jc := newTestJobCard(t)

	require.NoError(t, jc.UpdateCustomerInfo("John Roe", "9 Oak Ave", "555-0200"))
	assert.Equal(t, "John Roe", jc.Customer())
	assert.Equal(t, "9 Oak Ave", jc.Address())
	assert.Equal(t, "555-0200", jc.Phone())

	assert.Error(t, jc.UpdateCustomerInfo("", "9 Oak Ave", "555-0200"))
	assert.Error(t, jc.UpdateCustomerInfo("John Roe", "", "555-0200"))
	assert.Error(t, jc.UpdateCustomerInfo("John Roe", "9 Oak Ave", ""))
}

func TestJobCardUpdateComplaint(t *testing.T) {
	jc := newTestJobCard(t)

	jc.UpdateComplaint("", "")
	assert.Empty(t, jc.ComplaintDescription(), "an edit may clear the complaint")
	assert.Empty(t, jc.ComplaintNotes())

	jc.UpdateComplaint(" double clicking ", " new switch ordered ")
	assert.Equal(t, "double clicking", jc.ComplaintDescription())
	assert.Equal(t, "new switch ordered", jc.ComplaintNotes())
}

func TestJobCardChangeStatus(t *testing.T) {
	t.Run("allowed transition", func(t *testing.T) {
		jc := newTestJobCard(t)
		require.NoError(t, jc.ChangeStatus(vo.StatusSentToTechnician))
		assert.Equal(t, vo.StatusSentToTechnician, jc.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		jc := newTestJobCard(t)
		before := jc.UpdatedAt()
		require.NoError(t, jc.ChangeStatus(vo.StatusLogged))
		assert.Equal(t, before, jc.UpdatedAt())
	})

	t.Run("disallowed transition", func(t *testing.T) {
		jc := newTestJobCard(t)
		err := jc.ChangeStatus(vo.StatusReturned)
		assert.Error(t, err)
		assert.Equal(t, vo.StatusLogged, jc.Status())
	})

	t.Run("invalid status", func(t *testing.T) {
		jc := newTestJobCard(t)
		assert.Error(t, jc.ChangeStatus(vo.Status("archived")))
	})
}

func TestJobCardAddAttachment(t *testing.T) {
	jc := newTestJobCard(t)
	require.NoError(t, jc.SetID(7))

	att, err := NewAttachment(7, "uploads/jobcards/ab12.png", "mouse.png", "image/png", 1024)
	require.NoError(t, err)

	require.NoError(t, jc.AddAttachment(att))
	assert.Len(t, jc.Attachments(), 1)

	other, err := NewAttachment(8, "uploads/jobcards/cd34.png", "other.png", "image/png", 512)
	require.NoError(t, err)
	assert.Error(t, jc.AddAttachment(other), "attachment must belong to this row")
	assert.Error(t, jc.AddAttachment(nil))
}

func TestReconstructJobCard(t *testing.T) {
	now := time.Now()

	t.Run("valid reconstruction", func(t *testing.T) {
		jc, err := ReconstructJobCard(
			3, "TK-7GQ2M1XC", "Jane Doe", "12 Main St", "555-0100",
			vo.ItemMouse, "SN-001", "wireless", "not clicking", "",
			vo.StatusPending, now, now,
		)
		require.NoError(t, err)
		assert.Equal(t, uint(3), jc.ID())
		assert.Equal(t, vo.StatusPending, jc.Status())
	})

	t.Run("rejects zero id", func(t *testing.T) {
		_, err := ReconstructJobCard(
			0, "TK-7GQ2M1XC", "Jane Doe", "12 Main St", "555-0100",
			vo.ItemMouse, "", "", "", "", vo.StatusLogged, now, now,
		)
		assert.Error(t, err)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := ReconstructJobCard(
			3, "TK-7GQ2M1XC", "Jane Doe", "12 Main St", "555-0100",
			vo.ItemMouse, "", "", "", "", vo.Status("bogus"), now, now,
		)
		assert.Error(t, err)
	})
}

func TestNewAttachment(t *testing.T) {
	tests := []struct {
		name      string
		jobCardID uint
		filePath  string
		size      int64
		wantErr   bool
	}{
		{"valid", 1, "uploads/jobcards/ab12.png", 100, false},
		{"zero job card id", 0, "uploads/jobcards/ab12.png", 100, true},
		{"empty path", 1, "", 100, true},
		{"zero size", 1, "uploads/jobcards/ab12.png", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			att, err := NewAttachment(tt.jobCardID, tt.filePath, "photo.png", "image/png", tt.size)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.False(t, att.UploadedAt().IsZero())
		})
	}
}
