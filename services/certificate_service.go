package services // Use-case layer; orchestrates roster checks and rendering, not HTTP details.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/harshu1705/NSSS-Certificate/core"
	"github.com/harshu1705/NSSS-Certificate/global"
	"github.com/harshu1705/NSSS-Certificate/models"
	"github.com/harshu1705/NSSS-Certificate/utils"
	"github.com/harshu1705/NSSS-Certificate/utils/redislog"

	"github.com/redis/go-redis/v9" // artifact cache
)

// CertificateService lists the use-cases handlers can call.
type CertificateService interface {
	Events() []string  // selectable events, empty for the basic variant
	RequireEvent() bool // extended variant?
	Health() models.Health

	// Issue checks the submission and renders the certificate.
	// Errors wrap core.ErrNoEvent, core.ErrNameNotFound or core.ErrRenderFailure.
	Issue(ctx context.Context, req models.CertificateRequest) (*models.Artifact, error)

	// Download returns the certificate behind a verified download link.
	Download(ctx context.Context, name, event string) (*models.Artifact, error)
}

// Renderer is the template-load + compose pipeline (certificate.Renderer).
type Renderer interface {
	Render(ctx context.Context, name, event string) (*models.Artifact, error)
}

type certificateService struct {
	roster   RosterSnapshot
	events   []string
	renderer Renderer
	rdb      *redis.Client    // may be nil: no cache
	log      *redislog.Logger // may be nil
	cacheTTL time.Duration
}

// NewCertificateService wires the startup roster, the configured events and the renderer.
func NewCertificateService(roster RosterSnapshot, events []string, renderer Renderer, rdb *redis.Client, rlog *redislog.Logger, cacheTTL time.Duration) CertificateService {
	return &certificateService{
		roster:   roster,
		events:   append([]string(nil), events...),
		renderer: renderer,
		rdb:      rdb,
		log:      rlog,
		cacheTTL: cacheTTL,
	}
}

// cacheKeyArtifact hashes event + raw name; the raw name keeps casing distinct.
func (s *certificateService) cacheKeyArtifact(name, event string) string {
	return "cert:" + utils.Digest(event, name)
}

func (s *certificateService) Events() []string  { return append([]string(nil), s.events...) }
func (s *certificateService) RequireEvent() bool { return len(s.events) > 0 }

func (s *certificateService) Health() models.Health {
	return models.Health{
		Status:       "ok",
		Version:      global.AppVersion,
		RosterSize:   s.roster.Roster.Len(),
		RosterLoaded: s.roster.Err == nil,
	}
}

// Issue drives one form through its transitions:
// SelectEvent -> EnterName -> Submit -> (render) -> Complete.
func (s *certificateService) Issue(ctx context.Context, req models.CertificateRequest) (*models.Artifact, error) {
	form := core.NewForm(s.events)
	if form.RequiresEvent() {
		form.SelectEvent(req.Event)
	}
	form.EnterName(req.Name)

	if err := form.Submit(s.roster.Roster); err != nil {
		s.log.Warnf("submission rejected: %s", redislog.Fields{"name": req.Name, "event": req.Event}, form.State())
		return nil, err
	}

	art, err := s.render(ctx, form.Name(), form.Event())
	form.Complete(err)
	if err != nil {
		s.log.Error("certificate render failed", redislog.Fields{"state": form.State().String(), "name": form.Name(), "err": err.Error()})
		return nil, err
	}

	s.log.Info("certificate issued", redislog.Fields{"state": form.State().String(), "name": form.Name(), "event": form.Event()})
	return art, nil
}

// Download trusts the signed link but still refuses names that are not on the roster.
func (s *certificateService) Download(ctx context.Context, name, event string) (*models.Artifact, error) {
	if !s.roster.Roster.Contains(name) {
		return nil, core.ErrNameNotFound
	}
	if s.RequireEvent() && !s.hasEvent(event) {
		return nil, core.ErrNoEvent
	}
	return s.render(ctx, name, event)
}

func (s *certificateService) hasEvent(event string) bool {
	for _, e := range s.events {
		if e == event {
			return true
		}
	}
	return false
}

// render prefers the Redis copy and falls back to the renderer.
func (s *certificateService) render(ctx context.Context, name, event string) (*models.Artifact, error) {
	key := s.cacheKeyArtifact(name, event)
	if art := s.cached(ctx, key); art != nil {
		return art, nil
	}

	art, err := s.renderer.Render(ctx, name, event)
	if err != nil {
		if !errors.Is(err, core.ErrRenderFailure) {
			err = fmt.Errorf("%w: %v", core.ErrRenderFailure, err)
		}
		return nil, err
	}

	if s.rdb != nil && s.cacheTTL > 0 {
		if b, _ := json.Marshal(art); len(b) > 0 {
			if err := s.rdb.Set(ctx, key, b, s.cacheTTL).Err(); err != nil {
				s.log.Error("cache SET error", redislog.Fields{"key": key, "err": err.Error()})
			}
		}
	}
	return art, nil
}

func (s *certificateService) cached(ctx context.Context, key string) *models.Artifact {
	if s.rdb == nil || s.cacheTTL <= 0 {
		return nil
	}
	val, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var art models.Artifact
		if json.Unmarshal(val, &art) == nil {
			return &art
		}
		s.log.Warn("cache unmarshal failed", redislog.Fields{"key": key})
	case errors.Is(err, redis.Nil):
		// miss
	default:
		s.log.Error("cache GET error", redislog.Fields{"key": key, "err": err.Error()})
	}
	return nil
}
