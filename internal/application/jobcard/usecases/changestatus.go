package usecases

import (
	"context"

	"jobdesk/internal/domain/jobcard"
	vo "jobdesk/internal/domain/jobcard/valueobjects"
	"jobdesk/internal/shared/errors"
	"jobdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	JobCardID uint
	Status    string
}

type ChangeStatusResult struct {
	JobCardID uint
	TicketNo  string
	Status    string
}

// ChangeStatusUseCase moves a single row through the repair workflow.
type ChangeStatusUseCase struct {
	jobCardRepo jobcard.JobCardRepository
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	jobCardRepo jobcard.JobCardRepository,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		jobCardRepo: jobCardRepo,
		logger:      logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	if cmd.JobCardID == 0 {
		return nil, errors.NewValidationError("job card ID is required")
	}

	newStatus, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	row, err := uc.jobCardRepo.GetByID(ctx, cmd.JobCardID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, errors.NewNotFoundError("job card not found")
	}

	if err := row.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.jobCardRepo.Update(ctx, row); err != nil {
		uc.logger.Errorw("failed to update job card status", "job_card_id", cmd.JobCardID, "error", err)
		return nil, err
	}

	uc.logger.Infow("job card status changed", "job_card_id", cmd.JobCardID, "status", newStatus)

	return &ChangeStatusResult{
		JobCardID: row.ID(),
		TicketNo:  row.TicketNo(),
		Status:    row.Status().String(),
	}, nil
}
