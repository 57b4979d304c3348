package implementation

import (
	"context"
	"errors"

	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/mapper"
	"pm-intel-be/internal/model"
	"pm-intel-be/internal/repository/contract"
	"pm-intel-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserIdeaRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserIdeaMapper
}

func NewUserIdeaRepository(db *gorm.DB) contract.UserIdeaRepository {
	return &UserIdeaRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserIdeaMapper(),
	}
}

func (r *UserIdeaRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserIdeaRepositoryImpl) Create(ctx context.Context, idea *entity.UserIdea) error {
	m := r.mapper.ToModel(idea)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*idea = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserIdeaRepositoryImpl) Update(ctx context.Context, idea *entity.UserIdea) error {
	m := r.mapper.ToModel(idea)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*idea = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserIdeaRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UserIdea{}, id).Error
}

func (r *UserIdeaRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserIdea, error) {
	var models []*model.UserIdea
	// Newest first: the portal prepends fresh submissions.
	query := r.applySpecifications(r.db.WithContext(ctx).Order("created_at DESC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UserIdeaRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.UserIdea, error) {
	var m model.UserIdea
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
