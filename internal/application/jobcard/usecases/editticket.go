package usecases

import (
	"context"

	"jobdesk/internal/application/jobcard/dto"
	"jobdesk/internal/domain/jobcard"
	vo "jobdesk/internal/domain/jobcard/valueobjects"
	"jobdesk/internal/shared/errors"
	"jobdesk/internal/shared/logger"
)

type EditTicketCommand struct {
	TicketNo            string
	Customer            string
	Address             string
	Phone               string
	Items               []dto.ItemGroupInput
	DeleteAttachmentIDs []uint
}

type EditTicketResult struct {
	TicketNo    string
	RowsCreated int
	RowsUpdated int
	RowsDeleted int
}

// EditTicketUseCase reconciles the rows of a ticket against a freshly
// decoded form. The form is the full intended state: complaints carrying
// a row id overwrite that row, complaints without one become new rows,
// and baseline rows the form no longer references are deleted together
// with their attachments.
type EditTicketUseCase struct {
	jobCardRepo    jobcard.JobCardRepository
	attachmentRepo jobcard.AttachmentRepository
	fileStore      FileStore
	txManager      TransactionManager
	logger         logger.Interface
}

func NewEditTicketUseCase(
	jobCardRepo jobcard.JobCardRepository,
	attachmentRepo jobcard.AttachmentRepository,
	fileStore FileStore,
	txManager TransactionManager,
	logger logger.Interface,
) *EditTicketUseCase {
	return &EditTicketUseCase{
		jobCardRepo:    jobCardRepo,
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *EditTicketUseCase) Execute(ctx context.Context, cmd EditTicketCommand) (*EditTicketResult, error) {
	uc.logger.Infow("executing edit ticket use case", "ticket_no", cmd.TicketNo, "item_groups", len(cmd.Items))

	if len(cmd.TicketNo) == 0 {
		return nil, errors.NewValidationError("ticket number is required")
	}
	if err := validateCustomerFields(cmd.Customer, cmd.Address, cmd.Phone); err != nil {
		uc.logger.Errorw("invalid edit ticket command", "ticket_no", cmd.TicketNo, "error", err)
		return nil, err
	}

	baseline, err := uc.jobCardRepo.GetByTicketNo(ctx, cmd.TicketNo)
	if err != nil {
		return nil, err
	}
	if len(baseline) == 0 {
		return nil, errors.NewNotFoundError("ticket not found", cmd.TicketNo)
	}

	baselineByID := make(map[uint]*jobcard.JobCard, len(baseline))
	for _, row := range baseline {
		baselineByID[row.ID()] = row
	}

	// The referenced-id set comes from the decoded payload alone; the form
	// is fixed before reconciliation starts.
	referenced := make(map[uint]bool)
	for _, group := range cmd.Items {
		for _, complaint := range group.Complaints {
			if complaint.ID != nil {
				referenced[*complaint.ID] = true
			}
		}
	}

	result := &EditTicketResult{TicketNo: cmd.TicketNo}
	effects := &fileEffects{}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Reconciliation by absence: baseline rows the form no longer
		// references go away, attachments first.
		for _, row := range baseline {
			if referenced[row.ID()] {
				continue
			}
			if err := uc.deleteRow(txCtx, row, effects); err != nil {
				return err
			}
			result.RowsDeleted++
		}

		for _, group := range cmd.Items {
			item, err := vo.NewItem(group.Item)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}

			for _, complaint := range group.Complaints {
				if complaint.ID != nil {
					if row, ok := baselineByID[*complaint.ID]; ok {
						if err := uc.updateRow(txCtx, row, cmd, item, group, complaint); err != nil {
							return err
						}
						result.RowsUpdated++
						storeUploads(txCtx, uc.fileStore, uc.attachmentRepo, uc.logger, effects, row.ID(), complaint.Uploads)
						continue
					}
					uc.logger.Warnw("complaint references unknown row, creating new one",
						"ticket_no", cmd.TicketNo, "row_id", *complaint.ID)
				}

				rowID, err := uc.createRow(txCtx, cmd, item, group, complaint)
				if err != nil {
					return err
				}
				result.RowsCreated++
				storeUploads(txCtx, uc.fileStore, uc.attachmentRepo, uc.logger, effects, rowID, complaint.Uploads)
			}
		}

		return uc.deleteRequestedAttachments(txCtx, cmd, baselineByID, effects)
	})
	if err != nil {
		effects.rollback(ctx, uc.fileStore, uc.logger)
		uc.logger.Errorw("failed to edit ticket", "ticket_no", cmd.TicketNo, "error", err)
		return nil, err
	}
	effects.commit(ctx, uc.fileStore, uc.logger)

	uc.logger.Infow("ticket edited successfully",
		"ticket_no", cmd.TicketNo,
		"created", result.RowsCreated,
		"updated", result.RowsUpdated,
		"deleted", result.RowsDeleted)

	return result, nil
}

// deleteRequestedAttachments handles the explicit deletion list. Unknown
// ids are skipped: the list may repeat ids or reference attachments an
// earlier pass already removed, and deletion is idempotent. Attachments
// whose row does not belong to this ticket are skipped too; the list is
// scoped to the ticket being edited.
func (uc *EditTicketUseCase) deleteRequestedAttachments(
	ctx context.Context,
	cmd EditTicketCommand,
	baselineByID map[uint]*jobcard.JobCard,
	effects *fileEffects,
) error {
	for _, id := range cmd.DeleteAttachmentIDs {
		attachment, err := uc.attachmentRepo.GetByID(ctx, id)
		if err != nil {
			if errors.IsNotFoundError(err) {
				continue
			}
			return err
		}
		if attachment == nil {
			continue
		}
		if _, ok := baselineByID[attachment.JobCardID()]; !ok {
			uc.logger.Warnw("attachment belongs to another ticket, skipping",
				"ticket_no", cmd.TicketNo, "attachment_id", id, "job_card_id", attachment.JobCardID())
			continue
		}

		if err := deleteAttachmentRecords(ctx, uc.attachmentRepo, effects, []*jobcard.Attachment{attachment}); err != nil {
			return err
		}
	}
	return nil
}

func (uc *EditTicketUseCase) deleteRow(ctx context.Context, row *jobcard.JobCard, effects *fileEffects) error {
	attachments, err := uc.attachmentRepo.GetByJobCardID(ctx, row.ID())
	if err != nil {
		return err
	}
	if err := deleteAttachmentRecords(ctx, uc.attachmentRepo, effects, attachments); err != nil {
		return err
	}
	return uc.jobCardRepo.Delete(ctx, row.ID())
}

func (uc *EditTicketUseCase) updateRow(
	ctx context.Context,
	row *jobcard.JobCard,
	cmd EditTicketCommand,
	item vo.Item,
	group dto.ItemGroupInput,
	complaint dto.ComplaintInput,
) error {
	if err := row.UpdateCustomerInfo(cmd.Customer, cmd.Address, cmd.Phone); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := row.UpdateItemDetails(item, group.Serial, group.Config); err != nil {
		return errors.NewValidationError(err.Error())
	}
	row.UpdateComplaint(complaint.Description, complaint.Notes)

	return uc.jobCardRepo.Update(ctx, row)
}

func (uc *EditTicketUseCase) createRow(
	ctx context.Context,
	cmd EditTicketCommand,
	item vo.Item,
	group dto.ItemGroupInput,
	complaint dto.ComplaintInput,
) (uint, error) {
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
		return 0, errors.NewValidationError(err.Error())
	}
	if err := card.SetTicketNo(cmd.TicketNo); err != nil {
		return 0, errors.NewInternalError(err.Error())
	}

	if err := uc.jobCardRepo.Save(ctx, card); err != nil {
		return 0, err
	}
	return card.ID(), nil
}
