package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/domain/technology"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// unreachableRedis points at a closed port so every command fails fast.
func unreachableRedis(t *testing.T) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestCachedRepos_FallThroughWhenRedisDown(t *testing.T) {
	ctx := context.Background()
	rdb := unreachableRedis(t)
	log := logger.NewNop()

	techs, err := NewCachedTechnologyRepo(NewStaticTechnologyRepo(), rdb, time.Minute, log).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, SeedTechnologies(), techs)

	projects := NewCachedProjectRepo(NewStaticProjectRepo(), rdb, time.Minute, log)
	p, err := projects.FindByID(ctx, "food-ordering")
	require.NoError(t, err)
	assert.Equal(t, "Food Ordering Website", p.Title)
}

type failingTechRepo struct{ err error }

func (f failingTechRepo) List(ctx context.Context) ([]technology.Technology, error) {
	return nil, f.err
}

func TestCachedRepos_PropagateLoadError(t *testing.T) {
	boom := errors.New("db down")
	repo := NewCachedTechnologyRepo(failingTechRepo{err: boom}, unreachableRedis(t), time.Minute, logger.NewNop())

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, boom)
}
