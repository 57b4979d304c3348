package implementation

import (
	"context"
	"errors"

	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/mapper"
	"pm-intel-be/internal/model"
	"pm-intel-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SettingsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingsMapper
}

func NewSettingsRepository(db *gorm.DB) contract.SettingsRepository {
	return &SettingsRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingsMapper(),
	}
}

func (r *SettingsRepositoryImpl) Create(ctx context.Context, settings *entity.WorkspaceSettings) error {
	m := r.mapper.ToModel(settings)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*settings = *r.mapper.ToEntity(m)
	return nil
}

func (r *SettingsRepositoryImpl) Update(ctx context.Context, settings *entity.WorkspaceSettings) error {
	m := r.mapper.ToModel(settings)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*settings = *r.mapper.ToEntity(m)
	return nil
}

func (r *SettingsRepositoryImpl) FindFirst(ctx context.Context) (*entity.WorkspaceSettings, error) {
	var m model.WorkspaceSettings
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
