package seed

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"greengreen/pkg/apperr"
	croprepo "greengreen/pkg/crop/repositoryImp"
)

// Result counts crops by outcome.
type Result struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

type Seeder struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

func NewSeeder(db *gorm.DB, log *zap.Logger) *Seeder {
	return &Seeder{db: db, log: log, now: time.Now}
}

// Seed inserts every crop whose name is not yet in the database. Each crop and
// its pricing, windows and seed sources commit together; one failing crop
// does not stop the rest. The error is non-nil when any crop failed.
func (s *Seeder) Seed(c *Catalog) (Result, error) {
	var res Result
	now := s.now()
	for _, rec := range c.Crops {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			repo := croprepo.New(tx)
			_, err := repo.FindByName(rec.Name)
			switch {
			case err == nil:
				return errExists
			case !errors.Is(err, apperr.ErrNotFound):
				return err
			}
			crop := rec.Entity(now)
			return repo.Create(&crop)
		})
		switch {
		case err == nil:
			res.Inserted++
			s.log.Info("seeded crop", zap.String("op", "seed"), zap.String("crop", rec.Name),
				zap.Int("pricing", len(rec.Pricing)), zap.Int("windows", len(rec.PlantingWindows)))
		case errors.Is(err, errExists):
			res.Skipped++
			s.log.Debug("crop exists", zap.String("op", "seed"), zap.String("crop", rec.Name))
		default:
			res.Failed++
			s.log.Error("seed crop failed", zap.String("op", "seed"), zap.String("crop", rec.Name), zap.Error(err))
		}
	}
	s.log.Info("seed finished", zap.String("op", "seed"),
		zap.Int("inserted", res.Inserted), zap.Int("skipped", res.Skipped), zap.Int("failed", res.Failed))
	if res.Failed > 0 {
		return res, fmt.Errorf("seed: %d of %d crops failed", res.Failed, len(c.Crops))
	}
	return res, nil
}

var errExists = errors.New("crop exists")
