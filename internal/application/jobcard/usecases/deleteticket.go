package usecases

import (
	"context"

	"jobdesk/internal/domain/jobcard"
	"jobdesk/internal/shared/errors"
	"jobdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketNo string
}

type DeleteTicketResult struct {
	TicketNo    string
	RowsDeleted int
}

// DeleteTicketUseCase removes every row sharing a ticket number,
// cascading to attachments and their backing files.
type DeleteTicketUseCase struct {
	jobCardRepo    jobcard.JobCardRepository
	attachmentRepo jobcard.AttachmentRepository
	fileStore      FileStore
	txManager      TransactionManager
	logger         logger.Interface
}

func NewDeleteTicketUseCase(
	jobCardRepo jobcard.JobCardRepository,
	attachmentRepo jobcard.AttachmentRepository,
	fileStore FileStore,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		jobCardRepo:    jobCardRepo,
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	if len(cmd.TicketNo) == 0 {
		return nil, errors.NewValidationError("ticket number is required")
	}

	rows, err := uc.jobCardRepo.GetByTicketNo(ctx, cmd.TicketNo)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.NewNotFoundError("ticket not found", cmd.TicketNo)
	}

	result := &DeleteTicketResult{TicketNo: cmd.TicketNo}
	effects := &fileEffects{}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, row := range rows {
			attachments, err := uc.attachmentRepo.GetByJobCardID(txCtx, row.ID())
			if err != nil {
				return err
			}
			if err := deleteAttachmentRecords(txCtx, uc.attachmentRepo, effects, attachments); err != nil {
				return err
			}
			if err := uc.jobCardRepo.Delete(txCtx, row.ID()); err != nil {
				return err
			}
			result.RowsDeleted++
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_no", cmd.TicketNo, "error", err)
		return nil, err
	}
	effects.commit(ctx, uc.fileStore, uc.logger)

	uc.logger.Infow("ticket deleted", "ticket_no", cmd.TicketNo, "rows", result.RowsDeleted)
	return result, nil
}
