package usecases

import (
	"context"
	"strings"

	"jobdesk/internal/application/jobcard/dto"
	"jobdesk/internal/domain/jobcard"
	vo "jobdesk/internal/domain/jobcard/valueobjects"
	"jobdesk/internal/shared/errors"
	"jobdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Customer string
	Address  string
	Phone    string
	Items    []dto.ItemGroupInput
}

type CreateTicketResult struct {
	TicketNo    string
	RowsCreated int
}

// CreateTicketUseCase turns a decoded job-card form into one row per
// (item, complaint) pair, all sharing a freshly allocated ticket number.
type CreateTicketUseCase struct {
	jobCardRepo    jobcard.JobCardRepository
	attachmentRepo jobcard.AttachmentRepository
	allocator      jobcard.NumberAllocator
	fileStore      FileStore
	txManager      TransactionManager
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	jobCardRepo jobcard.JobCardRepository,
	attachmentRepo jobcard.AttachmentRepository,
	allocator jobcard.NumberAllocator,
	fileStore FileStore,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		jobCardRepo:    jobCardRepo,
		attachmentRepo: attachmentRepo,
		allocator:      allocator,
		fileStore:      fileStore,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "customer", cmd.Customer, "item_groups", len(cmd.Items))

	if err := validateCustomerFields(cmd.Customer, cmd.Address, cmd.Phone); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	ticketNo, err := uc.allocator.Allocate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to allocate ticket number", "error", err)
		return nil, err
	}

	rowsCreated := 0
	effects := &fileEffects{}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, group := range cmd.Items {
			item, err := vo.NewItem(group.Item)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}

			for _, complaint := range group.Complaints {
				card, err := jobcard.NewJobCard(
					cmd.Customer,
					cmd.Address,
					cmd.Phone,
					item,
					group.Serial,
					group.Config,
					complaint.Description,
					complaint.Notes,
				)
				if err != nil {
					return errors.NewValidationError(err.Error())
				}
				if err := card.SetTicketNo(ticketNo); err != nil {
					return errors.NewInternalError(err.Error())
				}

				if err := uc.jobCardRepo.Save(txCtx, card); err != nil {
					return err
				}
				rowsCreated++

				storeUploads(txCtx, uc.fileStore, uc.attachmentRepo, uc.logger, effects, card.ID(), complaint.Uploads)
			}
		}
		return nil
	})
	if err != nil {
		effects.rollback(ctx, uc.fileStore, uc.logger)
		uc.logger.Errorw("failed to create ticket", "ticket_no", ticketNo, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_no", ticketNo, "rows", rowsCreated)

	return &CreateTicketResult{
		TicketNo:    ticketNo,
		RowsCreated: rowsCreated,
	}, nil
}

func validateCustomerFields(customer, address, phone string) error {
	if len(strings.TrimSpace(customer)) == 0 {
		return errors.NewValidationError("customer name is required")
	}
	if len(strings.TrimSpace(address)) == 0 {
		return errors.NewValidationError("address is required")
	}
	if len(strings.TrimSpace(phone)) == 0 {
		return errors.NewValidationError("phone is required")
	}
	return nil
}
