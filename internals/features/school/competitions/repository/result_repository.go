package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidyalaya_backend/internals/features/school/competitions/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type ResultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Upsert writes one placement; re-recording the same (school, competition,
// year, place) overwrites the winner fields in place.
func (r *ResultRepository) Upsert(ctx context.Context, m *model.CompetitionResultModel) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "result_school_id"},
				{Name: "result_competition_id"},
				{Name: "result_year"},
				{Name: "result_place"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"result_type",
				"result_house_id",
				"result_student_id",
				"result_team_id",
				"result_grade_id",
				"result_award_winners",
				"result_updated_at",
			}),
		}).
		Create(m).Error
	return dberr.Translate(err)
}

func (r *ResultRepository) DeletePlacesNotIn(ctx context.Context, schoolID, competitionID uuid.UUID, year int, keepPlaces []int) error {
	q := r.db.WithContext(ctx).
		Where("result_school_id = ? AND result_competition_id = ? AND result_year = ?",
			schoolID, competitionID, year)
	if len(keepPlaces) > 0 {
		q = q.Where("result_place NOT IN ?", keepPlaces)
	}
	return dberr.Translate(q.Delete(&model.CompetitionResultModel{}).Error)
}

func (r *ResultRepository) ListByCompetitionYear(ctx context.Context, schoolID, competitionID uuid.UUID, year int) ([]model.CompetitionResultModel, error) {
	var ms []model.CompetitionResultModel
	err := r.db.WithContext(ctx).
		Where("result_school_id = ? AND result_competition_id = ? AND result_year = ?",
			schoolID, competitionID, year).
		Order("result_place ASC").
		Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

// ListScoring fetches only the rows that can contribute to the leaderboard.
func (r *ResultRepository) ListScoring(ctx context.Context, schoolID uuid.UUID, year int) ([]model.CompetitionResultModel, error) {
	var ms []model.CompetitionResultModel
	err := r.db.WithContext(ctx).
		Where("result_school_id = ? AND result_year = ? AND result_place <= 3 AND result_house_id IS NOT NULL",
			schoolID, year).
		Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *ResultRepository) CompetitionExists(ctx context.Context, schoolID, competitionID uuid.UUID) error {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.CompetitionModel{}).
		Where("competition_school_id = ? AND competition_id = ?", schoolID, competitionID).
		Count(&n).Error
	if err != nil {
		return dberr.Translate(err)
	}
	if n == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
