package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jobdesk/internal/domain/jobcard"
	"jobdesk/internal/infrastructure/persistence/mappers"
	"jobdesk/internal/infrastructure/persistence/models"
	"jobdesk/internal/shared/db"
	"jobdesk/internal/shared/errors"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.JobCardMapper
}

func NewAttachmentRepository(database *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     database,
		mapper: mappers.NewJobCardMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, attachment *jobcard.Attachment) error {
	model := r.mapper.AttachmentToModel(attachment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	if err := attachment.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, attachmentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.AttachmentModel{}, attachmentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("attachment not found")
	}
	return nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*jobcard.Attachment, error) {
	var model models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, attachmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("attachment not found")
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return r.mapper.AttachmentToDomain(&model)
}

func (r *AttachmentRepository) GetByJobCardID(ctx context.Context, jobCardID uint) ([]*jobcard.Attachment, error) {
	return r.findAttachments(ctx, "job_card_id = ?", jobCardID)
}

func (r *AttachmentRepository) GetByJobCardIDs(ctx context.Context, jobCardIDs []uint) ([]*jobcard.Attachment, error) {
	if len(jobCardIDs) == 0 {
		return nil, nil
	}
	return r.findAttachments(ctx, "job_card_id IN ?", jobCardIDs)
}

func (r *AttachmentRepository) findAttachments(ctx context.Context, query string, args ...interface{}) ([]*jobcard.Attachment, error) {
	var attachmentModels []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where(query, args...).
		Order("uploaded_at ASC, id ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find attachments: %w", err)
	}

	attachments := make([]*jobcard.Attachment, len(attachmentModels))
	for i, model := range attachmentModels {
		attachment, err := r.mapper.AttachmentToDomain(&model)
		if err != nil {
			return nil, err
		}
		attachments[i] = attachment
	}

	return attachments, nil
}
