package serviceImp

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"greengreen/entities"
	"greengreen/pkg/apperr"
	"greengreen/pkg/calculator"
	croprepo "greengreen/pkg/crop/repository"
	"greengreen/pkg/dashboard/types"
	"greengreen/pkg/metrics"
	"greengreen/pkg/planting"
	profilerepo "greengreen/pkg/profile/repository"
	"greengreen/pkg/region"
)

type DashboardSvc struct {
	crops         croprepo.CropRepository
	profiles      profilerepo.ProfileRepository
	defaultRegion string
	metrics       *metrics.Metrics
	log           *zap.Logger
	now           func() time.Time
}

func NewDashboardService(cr croprepo.CropRepository, pr profilerepo.ProfileRepository, defaultRegion string, m *metrics.Metrics, log *zap.Logger) *DashboardSvc {
	return &DashboardSvc{crops: cr, profiles: pr, defaultRegion: defaultRegion, metrics: m, log: log, now: time.Now}
}

// ranking is one user's ranked catalog and what it was computed from.
type ranking struct {
	profile *entities.UserProfile
	region  string
	catalog []entities.Crop
	ranked  []calculator.CalculatedCrop
}

func (s *DashboardSvc) rank(uid string) (*ranking, error) {
	p, err := s.profiles.FindByUser(uid)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	r := &ranking{profile: p, region: s.defaultRegion}
	if p == nil {
		return r, nil
	}
	r.region = region.ForState(p.LocationState, s.defaultRegion)
	if r.catalog, err = s.crops.List(""); err != nil {
		return nil, err
	}
	r.ranked = calculator.Rank(r.catalog, p, r.region)
	s.metrics.Ranked(p.Complete())
	s.log.Debug("ranked crops", zap.String("op", "dashboard.rank"), zap.String("uid", uid),
		zap.String("region", r.region), zap.Int("catalog", len(r.catalog)), zap.Int("ranked", len(r.ranked)))
	return r, nil
}

func (s *DashboardSvc) recommend(r *ranking) []planting.ProfitableRecommendation {
	windows := make(map[uint][]entities.PlantingWindow, len(r.catalog))
	for _, c := range r.catalog {
		windows[c.CropID] = c.PlantingWindows
	}
	recs := planting.WeeklyRecommendationsWithProfitability(r.ranked, windows, planting.Options{
		Now:            s.now(),
		Region:         r.region,
		GrowingMethods: r.profile.GrowingMethods,
	})
	s.metrics.Recommended(len(recs))
	return recs
}

func (s *DashboardSvc) Dashboard(uid string, f calculator.Filter) (*types.View, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrInvalidInput, err)
	}
	r, err := s.rank(uid)
	if err != nil {
		return nil, err
	}
	filtered := f.Apply(r.ranked)
	v := &types.View{
		HasProfile: r.profile.Complete(),
		Region:     r.region,
		Total:      len(r.ranked),
		Count:      len(filtered),
		Crops:      filtered,
	}
	if v.Crops == nil {
		v.Crops = []calculator.CalculatedCrop{}
	}
	if v.HasProfile && len(r.ranked) > 0 {
		recs := s.recommend(r)
		if len(recs) > types.PlantThisWeekLimit {
			recs = recs[:types.PlantThisWeekLimit]
		}
		v.PlantThisWeek = recs
	}
	return v, nil
}

func (s *DashboardSvc) PlantThisWeek(uid string) ([]planting.ProfitableRecommendation, error) {
	r, err := s.rank(uid)
	if err != nil {
		return nil, err
	}
	if r.profile == nil {
		return []planting.ProfitableRecommendation{}, nil
	}
	recs := s.recommend(r)
	if recs == nil {
		recs = []planting.ProfitableRecommendation{}
	}
	return recs, nil
}

func (s *DashboardSvc) Export(uid string, f calculator.Filter, w io.Writer) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrInvalidInput, err)
	}
	r, err := s.rank(uid)
	if err != nil {
		return err
	}
	return WriteWorkbook(w, f.Apply(r.ranked), r.profile.SqFt())
}
