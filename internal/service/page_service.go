package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/npohome/internal/block"
	"github.com/npohome/internal/db"
	"github.com/npohome/internal/metrics"
	"github.com/npohome/internal/page"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound   = errors.New("page not found")
	ErrStreamNotFound = errors.New("stream not found")
	ErrSlugTaken      = errors.New("slug is already in use")
)

// PageInput carries the scalar fields of a home page.
type PageInput struct {
	Title    string
	Slug     string
	Subtitle string
	Live     bool
}

// HomePageService manages home pages and their content streams.
type HomePageService struct {
	db      *gorm.DB
	logger  zerolog.Logger
	metrics *metrics.Collector
}

// NewHomePageService returns a new HomePageService. collector may be nil.
func NewHomePageService(gdb *gorm.DB, logger zerolog.Logger, collector *metrics.Collector) *HomePageService {
	return &HomePageService{
		db:      gdb,
		logger:  logger.With().Str("component", "home_page").Logger(),
		metrics: collector,
	}
}

// List returns every home page ordered by title.
func (s *HomePageService) List(ctx context.Context) ([]db.HomePage, error) {
	var pages []db.HomePage
	if err := s.db.WithContext(ctx).Order("title asc").Order("id asc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// Get fetches a page by id.
func (s *HomePageService) Get(ctx context.Context, id uint) (*db.HomePage, error) {
	var p db.HomePage
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetBySlug fetches a page for a given slug.
func (s *HomePageService) GetBySlug(ctx context.Context, slug string) (*db.HomePage, error) {
	var p db.HomePage
	if err := s.db.WithContext(ctx).Where("slug = ?", strings.TrimSpace(slug)).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create validates the scalar fields and inserts a page with empty streams.
func (s *HomePageService) Create(ctx context.Context, input PageInput) (*db.HomePage, error) {
	fields, err := validatePageInput(input)
	if err != nil {
		return nil, err
	}

	p := db.HomePage{Key: uuid.NewString()}
	applyPageFields(&p, fields)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureSlugFree(tx, p.Slug, 0); err != nil {
			return err
		}
		return tx.Create(&p).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("page_id", p.ID).Str("slug", p.Slug).Msg("home page created")
	return &p, nil
}

// Update replaces the scalar fields of a page. Streams are untouched.
func (s *HomePageService) Update(ctx context.Context, id uint, input PageInput) (*db.HomePage, error) {
	fields, err := validatePageInput(input)
	if err != nil {
		return nil, err
	}

	var p db.HomePage
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPageNotFound
			}
			return err
		}
		applyPageFields(&p, fields)
		if err := ensureSlugFree(tx, p.Slug, p.ID); err != nil {
			return err
		}
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a page together with its streams.
func (s *HomePageService) Delete(ctx context.Context, id uint) error {
	var p db.HomePage
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPageNotFound
		}
		return err
	}
	if err := s.db.WithContext(ctx).Unscoped().Delete(&p).Error; err != nil {
		return err
	}
	s.logger.Info().Uint("page_id", id).Msg("home page deleted")
	return nil
}

// Stream decodes the named stream of p.
func (s *HomePageService) Stream(p *db.HomePage, name string) ([]block.Instance, error) {
	if _, ok := page.Lookup(name); !ok {
		return nil, ErrStreamNotFound
	}
	data, _ := p.StreamData(name)
	instances, err := block.DecodeInstances(data)
	if err != nil {
		return nil, fmt.Errorf("page %d stream %s: %w", p.ID, name, err)
	}
	return instances, nil
}

// SetStream replaces the named stream wholesale. Every instance is
// validated first; if any fails the stored stream is left unchanged and
// the returned error is a block.Errors listing every failure.
func (s *HomePageService) SetStream(ctx context.Context, id uint, name string, instances []block.Instance) (*db.HomePage, error) {
	stream, ok := page.Lookup(name)
	if !ok {
		return nil, ErrStreamNotFound
	}

	validated, err := stream.Validate(instances)
	if err != nil {
		s.recordRejection(id, name, err)
		return nil, err
	}

	data, err := block.EncodeInstances(validated)
	if err != nil {
		return nil, err
	}

	var p db.HomePage
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPageNotFound
			}
			return err
		}
		p.SetStreamData(name, data)
		return tx.Save(&p).Error
	})
	if err != nil {
		if !errors.Is(err, ErrPageNotFound) {
			s.metrics.RecordStreamSave(name, metrics.OutcomeFailed)
			s.logger.Error().Err(err).Uint("page_id", id).Str("stream", name).Msg("stream save failed")
		}
		return nil, err
	}

	s.metrics.RecordStreamSave(name, metrics.OutcomeSaved)
	s.logger.Info().
		Uint("page_id", id).
		Str("stream", name).
		Int("blocks", len(validated)).
		Msg("stream replaced")
	return &p, nil
}

func (s *HomePageService) recordRejection(id uint, name string, err error) {
	s.metrics.RecordStreamSave(name, metrics.OutcomeRejected)
	errs, ok := block.AsErrors(err)
	if !ok {
		return
	}
	for _, e := range errs {
		s.metrics.RecordValidationError(string(e.Code))
	}
	s.logger.Warn().
		Uint("page_id", id).
		Str("stream", name).
		Int("errors", len(errs)).
		Msg("stream rejected")
}

func validatePageInput(input PageInput) (block.Value, error) {
	return page.Fields.Validate(map[string]any{
		"title":    input.Title,
		"slug":     strings.TrimSpace(input.Slug),
		"subtitle": input.Subtitle,
		"live":     input.Live,
	})
}

func applyPageFields(p *db.HomePage, fields block.Value) {
	p.Title, _ = fields["title"].(string)
	p.Slug, _ = fields["slug"].(string)
	p.Subtitle, _ = fields["subtitle"].(string)
	p.Live, _ = fields["live"].(bool)
}

func ensureSlugFree(tx *gorm.DB, slug string, selfID uint) error {
	var count int64
	query := tx.Unscoped().Model(&db.HomePage{}).Where("slug = ?", slug)
	if selfID != 0 {
		query = query.Where("id <> ?", selfID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugTaken
	}
	return nil
}
