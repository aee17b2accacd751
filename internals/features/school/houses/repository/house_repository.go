package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/houses/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type HouseRepository struct {
	db *gorm.DB
}

func NewHouseRepository(db *gorm.DB) *HouseRepository {
	return &HouseRepository{db: db}
}

func (r *HouseRepository) Insert(ctx context.Context, m *model.HouseModel) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *HouseRepository) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.HouseModel, error) {
	var m model.HouseModel
	err := r.db.WithContext(ctx).
		First(&m, "house_school_id = ? AND house_id = ?", schoolID, id).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *HouseRepository) List(ctx context.Context, schoolID uuid.UUID) ([]model.HouseModel, error) {
	var ms []model.HouseModel
	err := r.db.WithContext(ctx).
		Where("house_school_id = ?", schoolID).
		Order("house_name_en ASC").
		Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *HouseRepository) Save(ctx context.Context, m *model.HouseModel) error {
	res := r.db.WithContext(ctx).
		Model(&model.HouseModel{}).
		Where("house_school_id = ? AND house_id = ?", m.HouseSchoolID, m.HouseID).
		Updates(m)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (r *HouseRepository) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("house_school_id = ? AND house_id = ?", schoolID, id).
		Delete(&model.HouseModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

/* ===================== Squads ===================== */

func (r *HouseRepository) InsertSquad(ctx context.Context, m *model.SquadModel) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *HouseRepository) ListSquads(ctx context.Context, schoolID uuid.UUID, houseID *uuid.UUID) ([]model.SquadModel, error) {
	q := r.db.WithContext(ctx).Where("squad_school_id = ?", schoolID)
	if houseID != nil {
		q = q.Where("squad_house_id = ?", *houseID)
	}
	var ms []model.SquadModel
	if err := q.Order("squad_name ASC").Find(&ms).Error; err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *HouseRepository) DeleteSquad(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("squad_school_id = ? AND squad_id = ?", schoolID, id).
		Delete(&model.SquadModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
