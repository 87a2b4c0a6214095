package usecases

import (
	"context"

	"jobdesk/internal/application/jobcard/dto"
	"jobdesk/internal/domain/jobcard"
	"jobdesk/internal/shared/errors"
	"jobdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketNo string
}

// GetTicketUseCase loads the edit view of a ticket: rows come back from
// the repository ordered item then id, and are regrouped so each item
// appears once with its complaints in creation order.
type GetTicketUseCase struct {
	jobCardRepo    jobcard.JobCardRepository
	attachmentRepo jobcard.AttachmentRepository
	logger         logger.Interface
}

func NewGetTicketUseCase(
	jobCardRepo jobcard.JobCardRepository,
	attachmentRepo jobcard.AttachmentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		jobCardRepo:    jobCardRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if len(query.TicketNo) == 0 {
		return nil, errors.NewValidationError("ticket number is required")
	}

	rows, err := uc.jobCardRepo.GetByTicketNo(ctx, query.TicketNo)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_no", query.TicketNo, "error", err)
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.NewNotFoundError("ticket not found", query.TicketNo)
	}

	first := rows[0]
	ticket := &dto.TicketDTO{
		TicketNo:  first.TicketNo(),
		Customer:  first.Customer(),
		Address:   first.Address(),
		Phone:     first.Phone(),
		CreatedAt: first.CreatedAt(),
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID())
	}
	attachments, err := uc.attachmentRepo.GetByJobCardIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load attachments", "ticket_no", query.TicketNo, "error", err)
		return nil, err
	}
	attachmentsByRow := make(map[uint][]*jobcard.Attachment)
	for _, attachment := range attachments {
		attachmentsByRow[attachment.JobCardID()] = append(attachmentsByRow[attachment.JobCardID()], attachment)
	}

	indexByItem := make(map[string]int)
	for _, row := range rows {
		attachmentDTOs := make([]dto.AttachmentDTO, 0, len(attachmentsByRow[row.ID()]))
		for _, attachment := range attachmentsByRow[row.ID()] {
			attachmentDTOs = append(attachmentDTOs, dto.NewAttachmentDTO(attachment))
		}

		itemName := row.Item().String()
		idx, ok := indexByItem[itemName]
		if !ok {
			idx = len(ticket.Items)
			indexByItem[itemName] = idx
			ticket.Items = append(ticket.Items, dto.ItemGroupDTO{
				Item:   itemName,
				Serial: row.Serial(),
				Config: row.Config(),
			})
		}

		ticket.Items[idx].Complaints = append(ticket.Items[idx].Complaints, dto.ComplaintDTO{
			ID:          row.ID(),
			Description: row.ComplaintDescription(),
			Notes:       row.ComplaintNotes(),
			Status:      row.Status().String(),
			Attachments: attachmentDTOs,
		})
	}

	return ticket, nil
}
