package implementation

import (
	"context"
	"errors"

	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/mapper"
	"pm-intel-be/internal/model"
	"pm-intel-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TechStackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TechStackMapper
}

func NewTechStackRepository(db *gorm.DB) contract.TechStackRepository {
	return &TechStackRepositoryImpl{
		db:     db,
		mapper: mapper.NewTechStackMapper(),
	}
}

func (r *TechStackRepositoryImpl) Create(ctx context.Context, profile *entity.TechStackProfile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *TechStackRepositoryImpl) Update(ctx context.Context, profile *entity.TechStackProfile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *TechStackRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.TechStackProfile, error) {
	var m model.TechStackProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TechStackRepositoryImpl) FindFirst(ctx context.Context) (*entity.TechStackProfile, error) {
	var m model.TechStackProfile
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
