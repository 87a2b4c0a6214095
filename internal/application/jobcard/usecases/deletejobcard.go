package usecases

import (
	"context"

	"jobdesk/internal/domain/jobcard"
	"jobdesk/internal/shared/errors"
	"jobdesk/internal/shared/logger"
)

type DeleteJobCardCommand struct {
	JobCardID uint
}

type DeleteJobCardResult struct {
	JobCardID          uint
	AttachmentsRemoved int
}

// DeleteJobCardUseCase removes a single row together with its
// attachments and their backing files.
type DeleteJobCardUseCase struct {
	jobCardRepo    jobcard.JobCardRepository
	attachmentRepo jobcard.AttachmentRepository
	fileStore      FileStore
	txManager      TransactionManager
	logger         logger.Interface
}

func NewDeleteJobCardUseCase(
	jobCardRepo jobcard.JobCardRepository,
	attachmentRepo jobcard.AttachmentRepository,
	fileStore FileStore,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteJobCardUseCase {
	return &DeleteJobCardUseCase{
		jobCardRepo:    jobCardRepo,
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DeleteJobCardUseCase) Execute(ctx context.Context, cmd DeleteJobCardCommand) (*DeleteJobCardResult, error) {
	if cmd.JobCardID == 0 {
		return nil, errors.NewValidationError("job card ID is required")
	}

	row, err := uc.jobCardRepo.GetByID(ctx, cmd.JobCardID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, errors.NewNotFoundError("job card not found")
	}

	result := &DeleteJobCardResult{JobCardID: cmd.JobCardID}
	effects := &fileEffects{}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		attachments, err := uc.attachmentRepo.GetByJobCardID(txCtx, row.ID())
		if err != nil {
			return err
		}
		if err := deleteAttachmentRecords(txCtx, uc.attachmentRepo, effects, attachments); err != nil {
			return err
		}
		result.AttachmentsRemoved = len(attachments)

		return uc.jobCardRepo.Delete(txCtx, row.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete job card", "job_card_id", cmd.JobCardID, "error", err)
		return nil, err
	}
	effects.commit(ctx, uc.fileStore, uc.logger)

	uc.logger.Infow("job card deleted", "job_card_id", cmd.JobCardID, "ticket_no", row.TicketNo())
	return result, nil
}
