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

type InsightRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InsightMapper
}

func NewInsightRepository(db *gorm.DB) contract.InsightRepository {
	return &InsightRepositoryImpl{
		db:     db,
		mapper: mapper.NewInsightMapper(),
	}
}

func (r *InsightRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InsightRepositoryImpl) Create(ctx context.Context, insight *entity.Insight) error {
	m := r.mapper.ToModel(insight)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*insight = *r.mapper.ToEntity(m)
	return nil
}

func (r *InsightRepositoryImpl) Update(ctx context.Context, insight *entity.Insight) error {
	m := r.mapper.ToModel(insight)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*insight = *r.mapper.ToEntity(m)
	return nil
}

func (r *InsightRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Insight{}, id).Error
}

func (r *InsightRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Insight, error) {
	var models []*model.Insight
	query := r.applySpecifications(r.db.WithContext(ctx).Order("date DESC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *InsightRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Insight, error) {
	var m model.Insight
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
