package serviceImp

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"time"

	"go.uber.org/zap"

	"greengreen/entities"
	"greengreen/pkg/apperr"
	croprepo "greengreen/pkg/crop/repository"
	"greengreen/pkg/metrics"
	"greengreen/pkg/pricing"
	repo "greengreen/pkg/pricing/repository"
	"greengreen/pkg/pricing/service"
)

const dataSource = "import"

type pricingSvc struct {
	r       repo.PricingRepository
	crops   croprepo.CropRepository
	metrics *metrics.Metrics
	log     *zap.Logger
	now     func() time.Time
}

func NewPricingService(r repo.PricingRepository, crops croprepo.CropRepository, m *metrics.Metrics, log *zap.Logger) service.PricingService {
	return &pricingSvc{r: r, crops: crops, metrics: m, log: log, now: time.Now}
}

func (s *pricingSvc) Import(r io.Reader, source string) (*service.Report, error) {
	rows, err := pricing.ParseTable(r)
	if err != nil {
		if errors.Is(err, pricing.ErrNoTable) {
			return nil, fmt.Errorf("%w: %w", apperr.ErrInvalidInput, err)
		}
		return nil, err
	}

	rep := &service.Report{Skipped: []service.Skipped{}, Source: source}
	skip := func(row pricing.Row, reason string) {
		rep.Skipped = append(rep.Skipped, service.Skipped{Line: row.Line, Crop: row.Crop, Reason: reason})
	}
	now := s.now()
	for _, row := range rows {
		if row.Err != nil {
			skip(row, row.Err.Error())
			continue
		}
		if reason := validate(row); reason != "" {
			skip(row, reason)
			continue
		}
		crop, err := s.crops.FindByName(row.Crop)
		if errors.Is(err, apperr.ErrNotFound) {
			skip(row, "unknown crop")
			continue
		}
		if err != nil {
			return nil, err
		}
		p := &entities.CropPricing{
			CropID:       crop.CropID,
			SalesChannel: row.Channel,
			PriceLow:     row.Low,
			PriceHigh:    row.High,
			PriceUnit:    row.Unit,
			Region:       row.Region,
			DataSource:   dataSource,
			Notes:        source,
			LastUpdated:  now,
		}
		if err := s.r.Upsert(p); err != nil {
			return nil, err
		}
		rep.Accepted++
	}

	s.metrics.Imported("accepted", rep.Accepted)
	s.metrics.Imported("skipped", len(rep.Skipped))
	s.log.Info("price import", zap.String("op", "pricing.import"), zap.String("source", source),
		zap.Int("accepted", rep.Accepted), zap.Int("skipped", len(rep.Skipped)))
	return rep, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func validate(row pricing.Row) string {
	switch {
	case row.Crop == "":
		return "missing crop"
	case !slices.Contains(entities.SalesChannels, row.Channel):
		return fmt.Sprintf("unknown channel %q", row.Channel)
	case !slices.Contains(entities.PriceUnits, row.Unit):
		return fmt.Sprintf("unknown unit %q", row.Unit)
	case !finite(row.Low) || !finite(row.High):
		return "price is not a finite number"
	case row.Low < 0:
		return "negative price"
	case row.Low > row.High:
		return "low price above high price"
	}
	return ""
}
