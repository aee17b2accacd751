package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/competitions/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type CompetitionRepository struct {
	db *gorm.DB
}

func NewCompetitionRepository(db *gorm.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) Insert(ctx context.Context, m *model.CompetitionModel) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *CompetitionRepository) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.CompetitionModel, error) {
	var m model.CompetitionModel
	err := r.db.WithContext(ctx).
		Where("competition_school_id = ? AND competition_id = ?", schoolID, id).
		First(&m).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *CompetitionRepository) List(ctx context.Context, schoolID uuid.UUID) ([]model.CompetitionModel, error) {
	var ms []model.CompetitionModel
	err := r.db.WithContext(ctx).
		Where("competition_school_id = ?", schoolID).
		Order("competition_name_en ASC").
		Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *CompetitionRepository) Save(ctx context.Context, m *model.CompetitionModel) error {
	res := r.db.WithContext(ctx).
		Model(&model.CompetitionModel{}).
		Where("competition_school_id = ? AND competition_id = ?", m.CompetitionSchoolID, m.CompetitionID).
		Updates(m)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (r *CompetitionRepository) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("competition_school_id = ? AND competition_id = ?", schoolID, id).
		Delete(&model.CompetitionModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
