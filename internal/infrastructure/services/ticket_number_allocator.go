package services

import (
	"context"

	"jobdesk/internal/domain/jobcard"
	"jobdesk/internal/shared/id"
)

const (
	ticketNoPrefix       = "TK"
	ticketNoSuffixLength = 8
)

// TicketNumberAllocator issues TK-XXXXXXXX numbers, regenerating until
// the candidate does not match any stored row. With 36^8 possible
// suffixes a second round is already rare; there is no retry cap.
//
// The existence check and the later insert are not serialized. Two
// concurrent allocations could in principle pick the same free number;
// the rows would then group under one ticket, which is cosmetic rather
// than corrupting, so the window is accepted.
type TicketNumberAllocator struct {
	jobCardRepo jobcard.JobCardRepository
}

func NewTicketNumberAllocator(jobCardRepo jobcard.JobCardRepository) *TicketNumberAllocator {
	return &TicketNumberAllocator{jobCardRepo: jobCardRepo}
}

func (a *TicketNumberAllocator) Allocate(ctx context.Context) (string, error) {
	for {
		candidate, err := id.GenerateWithPrefix(ticketNoPrefix, ticketNoSuffixLength)
		if err != nil {
			return "", err
		}

		exists, err := a.jobCardRepo.ExistsByTicketNo(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}
