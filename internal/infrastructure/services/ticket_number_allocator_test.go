package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/domain/jobcard"
)

type stubJobCardRepository struct {
	jobcard.JobCardRepository

	existing map[string]bool
}

func (s *stubJobCardRepository) ExistsByTicketNo(ctx context.Context, ticketNo string) (bool, error) {
	return s.existing[ticketNo], nil
}

func TestAllocateFormat(t *testing.T) {
	allocator := NewTicketNumberAllocator(&stubJobCardRepository{})

	pattern := regexp.MustCompile(`^TK-[0-9A-Z]{8}$`)
	for i := 0; i < 100; i++ {
		got, err := allocator.Allocate(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, pattern, got)
	}
}

func TestAllocateNeverReturnsExistingNumber(t *testing.T) {
	// Pre-seed the store so that every number already issued collides;
	// the allocator must keep regenerating past all of them.
	repo := &stubJobCardRepository{existing: map[string]bool{}}
	allocator := NewTicketNumberAllocator(repo)

	pattern := regexp.MustCompile(`^TK-[0-9A-Z]{8}$`)
	for i := 0; i < 10000; i++ {
		got, err := allocator.Allocate(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, pattern, got)
		assert.False(t, repo.existing[got], "allocator returned a colliding number")
		repo.existing[got] = true
	}
}

func TestAllocateRegeneratesOnCollision(t *testing.T) {
	calls := 0
	repo := &countingRepository{
		exists: func(ticketNo string) bool {
			calls++
			// First two candidates "exist", the third is free.
			return calls <= 2
		},
	}
	allocator := NewTicketNumberAllocator(repo)

	got, err := allocator.Allocate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Regexp(t, `^TK-[0-9A-Z]{8}$`, got)
}

type countingRepository struct {
	jobcard.JobCardRepository

	exists func(ticketNo string) bool
}

func (c *countingRepository) ExistsByTicketNo(ctx context.Context, ticketNo string) (bool, error) {
	return c.exists(ticketNo), nil
}
