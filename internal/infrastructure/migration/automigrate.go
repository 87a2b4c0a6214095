package migration

import (
	"fmt"

	"gorm.io/gorm"

	"jobdesk/internal/infrastructure/persistence/models"
	"jobdesk/internal/shared/logger"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.JobCardModel{},
		&models.AttachmentModel{},
	}
}

// AutoMigrateStrategy lets gorm derive the schema from the models.
// Used by the sqlite-backed tests; production schemas come from the
// goose scripts.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy() *AutoMigrateStrategy {
	return &AutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed", "models", len(models))
	return nil
}

func (s *AutoMigrateStrategy) GetName() string {
	return "automigrate"
}
