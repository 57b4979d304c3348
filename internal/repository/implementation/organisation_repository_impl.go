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

type OrganisationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrganisationMapper
}

func NewOrganisationRepository(db *gorm.DB) contract.OrganisationRepository {
	return &OrganisationRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrganisationMapper(),
	}
}

func (r *OrganisationRepositoryImpl) Create(ctx context.Context, org *entity.Organisation) error {
	m := r.mapper.ToModel(org)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*org = *r.mapper.ToEntity(m)
	return nil
}

func (r *OrganisationRepositoryImpl) Update(ctx context.Context, org *entity.Organisation) error {
	m := r.mapper.ToModel(org)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*org = *r.mapper.ToEntity(m)
	return nil
}

func (r *OrganisationRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Organisation, error) {
	var m model.Organisation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *OrganisationRepositoryImpl) FindFirst(ctx context.Context) (*entity.Organisation, error) {
	var m model.Organisation
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
