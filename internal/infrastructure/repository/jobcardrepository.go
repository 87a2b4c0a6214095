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

type JobCardRepository struct {
	db     *gorm.DB
	mapper mappers.JobCardMapper
}

func NewJobCardRepository(database *gorm.DB) *JobCardRepository {
	return &JobCardRepository{
		db:     database,
		mapper: mappers.NewJobCardMapper(),
	}
}

func (r *JobCardRepository) Save(ctx context.Context, card *jobcard.JobCard) error {
	model := r.mapper.ToModel(card)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save job card: %w", err)
	}

	if err := card.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *JobCardRepository) Update(ctx context.Context, card *jobcard.JobCard) error {
	model := r.mapper.ToModel(card)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.JobCardModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"customer":              model.Customer,
			"address":               model.Address,
			"phone":                 model.Phone,
			"item":                  model.Item,
			"serial":                model.Serial,
			"config":                model.Config,
			"complaint_description": model.ComplaintDescription,
			"complaint_notes":       model.ComplaintNotes,
			"status":                model.Status,
			"updated_at":            model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update job card: %w", result.Error)
	}

	// Updates uses a map so cleared complaint fields still write their
	// zero values. RowsAffected may be 0 when nothing changed.

	return nil
}

func (r *JobCardRepository) Delete(ctx context.Context, cardID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.JobCardModel{}, cardID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("job card not found")
	}
	return nil
}

func (r *JobCardRepository) GetByID(ctx context.Context, cardID uint) (*jobcard.JobCard, error) {
	var model models.JobCardModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, cardID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("job card not found")
		}
		return nil, fmt.Errorf("failed to find job card: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *JobCardRepository) GetByTicketNo(ctx context.Context, ticketNo string) ([]*jobcard.JobCard, error) {
	var cardModels []models.JobCardModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_no = ?", ticketNo).
		Order("item ASC, id ASC").
		Find(&cardModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find job cards: %w", err)
	}

	cards := make([]*jobcard.JobCard, len(cardModels))
	for i, model := range cardModels {
		card, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}

	return cards, nil
}

func (r *JobCardRepository) List(
	ctx context.Context,
	filter jobcard.JobCardFilter,
) ([]*jobcard.JobCard, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.JobCardModel{})

	if filter.TicketNo != nil {
		query = query.Where("ticket_no = ?", *filter.TicketNo)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Customer != nil {
		query = query.Where("customer LIKE ?", "%"+*filter.Customer+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count job cards: %w", err)
	}

	// Newest visit first; id breaks ties for rows logged in one request.
	query = query.Order("created_at DESC, id DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var cardModels []models.JobCardModel
	if err := query.Find(&cardModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list job cards: %w", err)
	}

	cards := make([]*jobcard.JobCard, len(cardModels))
	for i, model := range cardModels {
		card, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		cards[i] = card
	}

	return cards, total, nil
}

func (r *JobCardRepository) ExistsByTicketNo(ctx context.Context, ticketNo string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.JobCardModel{}).
		Where("ticket_no = ?", ticketNo).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket number: %w", err)
	}

	return count > 0, nil
}
