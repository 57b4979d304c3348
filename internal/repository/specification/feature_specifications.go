package specification

import "gorm.io/gorm"

// ByStatus filters features by lifecycle status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByRelease filters features by their assigned roadmap bucket label
type ByRelease struct {
	Release string
}

func (s ByRelease) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("release = ?", s.Release)
}

// ByProductArea filters features by product area
type ByProductArea struct {
	Area string
}

func (s ByProductArea) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("product_area = ?", s.Area)
}

// OrderByScore orders features by the cached final score, highest first.
// Ties fall back to creation time so the prioritization list is stable.
type OrderByScore struct{}

func (s OrderByScore) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("final_score DESC, created_at ASC")
}
