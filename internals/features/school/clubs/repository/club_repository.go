package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/clubs/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type ClubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) Insert(ctx context.Context, m *model.ClubModel) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *ClubRepository) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.ClubModel, error) {
	var m model.ClubModel
	err := r.db.WithContext(ctx).
		First(&m, "club_school_id = ? AND club_id = ?", schoolID, id).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *ClubRepository) List(ctx context.Context, schoolID uuid.UUID) ([]model.ClubModel, error) {
	var ms []model.ClubModel
	err := r.db.WithContext(ctx).
		Where("club_school_id = ?", schoolID).
		Order("club_name_en ASC").
		Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *ClubRepository) Save(ctx context.Context, m *model.ClubModel) error {
	res := r.db.WithContext(ctx).
		Model(&model.ClubModel{}).
		Where("club_school_id = ? AND club_id = ?", m.ClubSchoolID, m.ClubID).
		Updates(m)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// SaveMembers swaps the whole roster in one statement.
func (r *ClubRepository) SaveMembers(ctx context.Context, schoolID, id uuid.UUID, members []byte, actorID uuid.UUID) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&model.ClubModel{}).
		Where("club_school_id = ? AND club_id = ?", schoolID, id).
		Updates(map[string]interface{}{
			"club_members":    members,
			"club_updated_by": actorID,
			"club_updated_at": now,
		})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (r *ClubRepository) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("club_school_id = ? AND club_id = ?", schoolID, id).
		Delete(&model.ClubModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

/* ===================== Positions ===================== */

func (r *ClubRepository) InsertPosition(ctx context.Context, m *model.ClubPositionModel) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *ClubRepository) ListPositions(ctx context.Context, schoolID uuid.UUID) ([]model.ClubPositionModel, error) {
	var ms []model.ClubPositionModel
	err := r.db.WithContext(ctx).
		Where("club_position_school_id = ?", schoolID).
		Order("club_position_name ASC").
		Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *ClubRepository) DeletePosition(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("club_position_school_id = ? AND club_position_id = ?", schoolID, id).
		Delete(&model.ClubPositionModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
