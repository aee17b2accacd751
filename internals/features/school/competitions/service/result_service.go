package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"vidyalaya_backend/internals/features/school/competitions/dto"
	"vidyalaya_backend/internals/features/school/competitions/model"
)

// ErrDuplicatePlace: a recording payload contained two entries for the same
// place. Raised before any row is written.
var ErrDuplicatePlace = errors.New("duplicate place in results payload")

// Points awarded per place; anything else scores zero.
var placePoints = map[int]int{1: 15, 2: 10, 3: 5}

const housePointsCacheTTL = 60 * time.Second

type ResultStore interface {
	Upsert(ctx context.Context, m *model.CompetitionResultModel) error
	DeletePlacesNotIn(ctx context.Context, schoolID, competitionID uuid.UUID, year int, keepPlaces []int) error
	ListByCompetitionYear(ctx context.Context, schoolID, competitionID uuid.UUID, year int) ([]model.CompetitionResultModel, error)
	ListScoring(ctx context.Context, schoolID uuid.UUID, year int) ([]model.CompetitionResultModel, error)
	CompetitionExists(ctx context.Context, schoolID, competitionID uuid.UUID) error
}

type ResultService struct {
	store    ResultStore
	cache    *redis.Client // nil disables the leaderboard cache
	validate *validator.Validate
}

func NewResultService(store ResultStore, cache *redis.Client) *ResultService {
	v := validator.New()
	v.RegisterStructValidation(dto.ResultEntryValidation, dto.ResultEntry{})
	return &ResultService{store: store, cache: cache, validate: v}
}

// Record saves a full set of placements for one competition/year. The batch
// is rejected wholesale on a duplicate place so a bad payload cannot
// partially commit; the upserts themselves fan out independently with no
// shared transaction. Returns the full saved set ordered by place ascending.
func (s *ResultService) Record(ctx context.Context, schoolID, competitionID uuid.UUID, req *dto.RecordResultsRequest, actorID uuid.UUID) ([]*dto.ResultResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	// fail fast, before any persistence call
	seen := make(map[int]struct{}, len(req.Results))
	for _, e := range req.Results {
		if _, dup := seen[e.ResultPlace]; dup {
			return nil, fmt.Errorf("%w: place %d", ErrDuplicatePlace, e.ResultPlace)
		}
		seen[e.ResultPlace] = struct{}{}
	}

	if err := s.store.CompetitionExists(ctx, schoolID, competitionID); err != nil {
		return nil, err
	}

	if req.ResultMode == dto.RecordModeReplace {
		keep := make([]int, 0, len(req.Results))
		for _, e := range req.Results {
			keep = append(keep, e.ResultPlace)
		}
		if err := s.store.DeletePlacesNotIn(ctx, schoolID, competitionID, req.ResultYear, keep); err != nil {
			return nil, err
		}
	}

	errs := make([]error, len(req.Results))
	var wg sync.WaitGroup
	for i, e := range req.Results {
		wg.Add(1)
		go func(i int, e dto.ResultEntry) {
			defer wg.Done()
			errs[i] = s.store.Upsert(ctx, e.ToModel(schoolID, competitionID, req.ResultYear, actorID))
		}(i, e)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	s.invalidateHousePoints(ctx, schoolID, req.ResultYear)

	saved, err := s.store.ListByCompetitionYear(ctx, schoolID, competitionID, req.ResultYear)
	if err != nil {
		return nil, err
	}
	return dto.NewResultResponses(saved), nil
}

// ListByCompetitionYear returns the recorded set ordered by place ascending.
func (s *ResultService) ListByCompetitionYear(ctx context.Context, schoolID, competitionID uuid.UUID, year int) ([]*dto.ResultResponse, error) {
	if err := s.store.CompetitionExists(ctx, schoolID, competitionID); err != nil {
		return nil, err
	}
	ms, err := s.store.ListByCompetitionYear(ctx, schoolID, competitionID, year)
	if err != nil {
		return nil, err
	}
	return dto.NewResultResponses(ms), nil
}

// HousePoints computes the per-house leaderboard for a year. Places 1/2/3
// score 15/10/5; rows without a house, or outside those places, are
// excluded. Pure read-side computation: repeated calls over unchanged
// results yield the identical list. Order is points descending with house id
// ascending as the tie-break.
func (s *ResultService) HousePoints(ctx context.Context, schoolID uuid.UUID, year int) ([]dto.HousePointsEntry, error) {
	if cached, ok := s.cachedHousePoints(ctx, schoolID, year); ok {
		return cached, nil
	}

	rows, err := s.store.ListScoring(ctx, schoolID, year)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	for _, r := range rows {
		pts, scoring := placePoints[r.ResultPlace]
		if !scoring || r.ResultHouseID == nil {
			continue
		}
		totals[r.ResultHouseID.String()] += pts
	}

	out := make([]dto.HousePointsEntry, 0, len(totals))
	for houseID, pts := range totals {
		out = append(out, dto.HousePointsEntry{HouseID: houseID, Points: pts})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].HouseID < out[j].HouseID
	})

	s.storeHousePoints(ctx, schoolID, year, out)
	return out, nil
}

/* ===================== Leaderboard cache ===================== */

func housePointsKey(schoolID uuid.UUID, year int) string {
	return fmt.Sprintf("housepoints:%s:%d", schoolID, year)
}

func (s *ResultService) cachedHousePoints(ctx context.Context, schoolID uuid.UUID, year int) ([]dto.HousePointsEntry, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, housePointsKey(schoolID, year)).Bytes()
	if err != nil {
		return nil, false
	}
	var out []dto.HousePointsEntry
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (s *ResultService) storeHousePoints(ctx context.Context, schoolID uuid.UUID, year int, entries []dto.HousePointsEntry) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	// best effort, a failed cache write only costs the next read a query
	s.cache.Set(ctx, housePointsKey(schoolID, year), raw, housePointsCacheTTL)
}

func (s *ResultService) invalidateHousePoints(ctx context.Context, schoolID uuid.UUID, year int) {
	if s.cache == nil {
		return
	}
	s.cache.Del(ctx, housePointsKey(schoolID, year))
}
