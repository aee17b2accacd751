package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/prefects/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type PrefectRepository struct {
	db *gorm.DB
}

func NewPrefectRepository(db *gorm.DB) *PrefectRepository {
	return &PrefectRepository{db: db}
}

/* ===================== Positions ===================== */

func (r *PrefectRepository) InsertPosition(ctx context.Context, m *model.PrefectPositionModel) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *PrefectRepository) ListPositions(ctx context.Context, schoolID uuid.UUID) ([]model.PrefectPositionModel, error) {
	var ms []model.PrefectPositionModel
	err := r.db.WithContext(ctx).
		Where("prefect_position_school_id = ?", schoolID).
		Order("prefect_position_name ASC").
		Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *PrefectRepository) DeletePosition(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("prefect_position_school_id = ? AND prefect_position_id = ?", schoolID, id).
		Delete(&model.PrefectPositionModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

/* ===================== Years ===================== */

func (r *PrefectRepository) FindYear(ctx context.Context, schoolID uuid.UUID, year int) (*model.PrefectYearModel, error) {
	var m model.PrefectYearModel
	err := r.db.WithContext(ctx).
		First(&m, "prefect_year_school_id = ? AND prefect_year_year = ?", schoolID, year).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *PrefectRepository) InsertYear(ctx context.Context, m *model.PrefectYearModel) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *PrefectRepository) ListYears(ctx context.Context, schoolID uuid.UUID) ([]model.PrefectYearModel, error) {
	var ms []model.PrefectYearModel
	err := r.db.WithContext(ctx).
		Where("prefect_year_school_id = ?", schoolID).
		Order("prefect_year_year DESC").
		Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

// SaveAppointments swaps the whole board in one statement.
func (r *PrefectRepository) SaveAppointments(ctx context.Context, schoolID uuid.UUID, year int, apps []byte, actorID uuid.UUID) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&model.PrefectYearModel{}).
		Where("prefect_year_school_id = ? AND prefect_year_year = ?", schoolID, year).
		Updates(map[string]interface{}{
			"prefect_year_appointments": apps,
			"prefect_year_updated_by":   actorID,
			"prefect_year_updated_at":   now,
		})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
