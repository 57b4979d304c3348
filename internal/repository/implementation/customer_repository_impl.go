// FILE: internal/repository/implementation/customer_repository_impl.go
// Implementations of customer intelligence repositories
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

type CustomerSegmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CustomerSegmentMapper
}

func NewCustomerSegmentRepository(db *gorm.DB) contract.CustomerSegmentRepository {
	return &CustomerSegmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewCustomerSegmentMapper(),
	}
}

func (r *CustomerSegmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CustomerSegmentRepositoryImpl) Create(ctx context.Context, segment *entity.CustomerSegment) error {
	m := r.mapper.ToModel(segment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*segment = *r.mapper.ToEntity(m)
	return nil
}

func (r *CustomerSegmentRepositoryImpl) Update(ctx context.Context, segment *entity.CustomerSegment) error {
	m := r.mapper.ToModel(segment)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*segment = *r.mapper.ToEntity(m)
	return nil
}

func (r *CustomerSegmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CustomerSegment{}, id).Error
}

func (r *CustomerSegmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CustomerSegment, error) {
	var models []*model.CustomerSegment
	query := r.applySpecifications(r.db.WithContext(ctx).Order("created_at ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CustomerSegmentRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.CustomerSegment, error) {
	var m model.CustomerSegment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

type PainPointRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PainPointMapper
}

func NewPainPointRepository(db *gorm.DB) contract.PainPointRepository {
	return &PainPointRepositoryImpl{
		db:     db,
		mapper: mapper.NewPainPointMapper(),
	}
}

func (r *PainPointRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PainPointRepositoryImpl) Create(ctx context.Context, point *entity.PainPoint) error {
	m := r.mapper.ToModel(point)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*point = *r.mapper.ToEntity(m)
	return nil
}

func (r *PainPointRepositoryImpl) Update(ctx context.Context, point *entity.PainPoint) error {
	m := r.mapper.ToModel(point)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*point = *r.mapper.ToEntity(m)
	return nil
}

func (r *PainPointRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PainPoint{}, id).Error
}

func (r *PainPointRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PainPoint, error) {
	var models []*model.PainPoint
	query := r.applySpecifications(r.db.WithContext(ctx).Order("signal_count DESC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PainPointRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.PainPoint, error) {
	var m model.PainPoint
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

type JTBDRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.JTBDMapper
}

func NewJTBDRepository(db *gorm.DB) contract.JTBDRepository {
	return &JTBDRepositoryImpl{
		db:     db,
		mapper: mapper.NewJTBDMapper(),
	}
}

func (r *JTBDRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *JTBDRepositoryImpl) Create(ctx context.Context, job *entity.JTBD) error {
	m := r.mapper.ToModel(job)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*job = *r.mapper.ToEntity(m)
	return nil
}

func (r *JTBDRepositoryImpl) Update(ctx context.Context, job *entity.JTBD) error {
	m := r.mapper.ToModel(job)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*job = *r.mapper.ToEntity(m)
	return nil
}

func (r *JTBDRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.JTBD{}, id).Error
}

func (r *JTBDRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JTBD, error) {
	var models []*model.JTBD
	query := r.applySpecifications(r.db.WithContext(ctx).Order("created_at ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *JTBDRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.JTBD, error) {
	var m model.JTBD
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
