package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/technology"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	cacheKeyProfile      = "portfolio:profile"
	cacheKeyProjects     = "portfolio:projects"
	cacheKeyTechnologies = "portfolio:technologies"
)

// readThrough serves key from Redis, loading and storing it on a miss.
// Redis failures are logged and never fail the read.
func readThrough[T any](ctx context.Context, rdb *redis.Client, log logger.Logger, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	b, err := rdb.Get(ctx, key).Bytes()
	if err == nil {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
		log.Warn("Discarding undecodable cache entry", zap.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		log.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if b, err := json.Marshal(v); err == nil {
		if err := rdb.Set(ctx, key, b, ttl).Err(); err != nil {
			log.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return v, nil
}

type cachedProfileRepo struct {
	next   profile.Repository
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedProfileRepo(next profile.Repository, rdb *redis.Client, ttl time.Duration, log logger.Logger) profile.Repository {
	return &cachedProfileRepo{next: next, rdb: rdb, ttl: ttl, logger: log}
}

func (r *cachedProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	return readThrough(ctx, r.rdb, r.logger, cacheKeyProfile, r.ttl, r.next.Get)
}

type cachedProjectRepo struct {
	next   project.Repository
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedProjectRepo(next project.Repository, rdb *redis.Client, ttl time.Duration, log logger.Logger) project.Repository {
	return &cachedProjectRepo{next: next, rdb: rdb, ttl: ttl, logger: log}
}

func (r *cachedProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	return readThrough(ctx, r.rdb, r.logger, cacheKeyProjects, r.ttl, r.next.List)
}

// FindByID is answered from the cached list so that both reads agree.
func (r *cachedProjectRepo) FindByID(ctx context.Context, id string) (*project.Project, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return r.next.FindByID(ctx, id)
}

type cachedTechnologyRepo struct {
	next   technology.Repository
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedTechnologyRepo(next technology.Repository, rdb *redis.Client, ttl time.Duration, log logger.Logger) technology.Repository {
	return &cachedTechnologyRepo{next: next, rdb: rdb, ttl: ttl, logger: log}
}

func (r *cachedTechnologyRepo) List(ctx context.Context) ([]technology.Technology, error) {
	return readThrough(ctx, r.rdb, r.logger, cacheKeyTechnologies, r.ttl, r.next.List)
}

// InvalidateContent drops every cached content key, e.g. after reseeding.
func InvalidateContent(ctx context.Context, rdb *redis.Client) error {
	return rdb.Del(ctx, cacheKeyProfile, cacheKeyProjects, cacheKeyTechnologies).Err()
}
