package usecases

import (
	"context"

	"jobdesk/internal/application/jobcard/dto"
	"jobdesk/internal/domain/jobcard"
	vo "jobdesk/internal/domain/jobcard/valueobjects"
	"jobdesk/internal/shared/errors"
	"jobdesk/internal/shared/logger"
)

type ListJobCardsQuery struct {
	Grouped  bool
	Status   string
	Customer string
	Page     int
	PageSize int
}

type ListJobCardsResult struct {
	Cards   []dto.JobCardDTO
	Tickets []dto.TicketGroupDTO
	Total   int64
}

// ListJobCardsUseCase lists rows newest first. The grouped variant
// buckets rows by ticket number while preserving that order.
type ListJobCardsUseCase struct {
	jobCardRepo    jobcard.JobCardRepository
	attachmentRepo jobcard.AttachmentRepository
	logger         logger.Interface
}

func NewListJobCardsUseCase(
	jobCardRepo jobcard.JobCardRepository,
	attachmentRepo jobcard.AttachmentRepository,
	logger logger.Interface,
) *ListJobCardsUseCase {
	return &ListJobCardsUseCase{
		jobCardRepo:    jobCardRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *ListJobCardsUseCase) Execute(ctx context.Context, query ListJobCardsQuery) (*ListJobCardsResult, error) {
	filter := jobcard.JobCardFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if len(query.Status) > 0 {
		status, err := parseStatusFilter(query.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	if len(query.Customer) > 0 {
		filter.Customer = &query.Customer
	}

	rows, total, err := uc.jobCardRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list job cards", "error", err)
		return nil, err
	}

	attachmentsByRow, err := uc.loadAttachments(ctx, rows)
	if err != nil {
		return nil, err
	}

	cardDTOs := make([]dto.JobCardDTO, 0, len(rows))
	for _, row := range rows {
		cardDTOs = append(cardDTOs, dto.NewJobCardDTO(row, attachmentsByRow[row.ID()]))
	}

	result := &ListJobCardsResult{Total: total}
	if query.Grouped {
		result.Tickets = groupByTicket(cardDTOs)
	} else {
		result.Cards = cardDTOs
	}
	return result, nil
}

func (uc *ListJobCardsUseCase) loadAttachments(ctx context.Context, rows []*jobcard.JobCard) (map[uint][]*jobcard.Attachment, error) {
	if len(rows) == 0 {
		return map[uint][]*jobcard.Attachment{}, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID())
	}

	attachments, err := uc.attachmentRepo.GetByJobCardIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load attachments", "error", err)
		return nil, err
	}

	byRow := make(map[uint][]*jobcard.Attachment)
	for _, attachment := range attachments {
		byRow[attachment.JobCardID()] = append(byRow[attachment.JobCardID()], attachment)
	}
	return byRow, nil
}

func parseStatusFilter(s string) (*vo.Status, error) {
	status, err := vo.NewStatus(s)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return &status, nil
}

// groupByTicket buckets cards under their ticket number in first-seen
// order, which keeps the newest ticket first.
func groupByTicket(cards []dto.JobCardDTO) []dto.TicketGroupDTO {
	groups := make([]dto.TicketGroupDTO, 0)
	indexByTicket := make(map[string]int)

	for _, card := range cards {
		idx, ok := indexByTicket[card.TicketNo]
		if !ok {
			idx = len(groups)
			indexByTicket[card.TicketNo] = idx
			groups = append(groups, dto.TicketGroupDTO{
				TicketNo: card.TicketNo,
				Customer: card.Customer,
				Phone:    card.Phone,
			})
		}
		groups[idx].Cards = append(groups[idx].Cards, card)
	}
	return groups
}
