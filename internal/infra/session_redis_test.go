package infra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the two commands the session store issues.
type fakeRedis struct {
	redis.Cmdable

	data    map[string][]byte
	ttls    map[string]time.Duration
	failGet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	b, ok := value.([]byte)
	if !ok {
		return redis.NewStatusResult("", errors.New("unexpected value type"))
	}
	f.data[key] = b
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func TestRedisSessionStore_RoundTrip(t *testing.T) {
	rdb := newFakeRedis()
	store := NewRedisSessionStore(rdb, 24*time.Hour)
	ctx := context.Background()

	got, err := store.Load(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	state := &models.ViewState{
		Search:  models.SearchState{Query: "q", Results: []models.SearchResult{{Source: "A", Text: "a"}}},
		Catalog: models.CatalogState{CategoryID: 3, MediaType: models.MediaImage},
	}
	require.NoError(t, store.Save(ctx, "sid", state))

	assert.Equal(t, 24*time.Hour, rdb.ttls["cloudio:session:sid:view"])
	assert.JSONEq(t,
		`{"search":{"query":"q","results":[{"source":"A","text":"a"}]},"catalog":{"category_id":3,"media_type":"image"}}`,
		string(rdb.data["cloudio:session:sid:view"]))

	got, err = store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestRedisSessionStore_Errors(t *testing.T) {
	rdb := newFakeRedis()
	store := NewRedisSessionStore(rdb, time.Hour)
	ctx := context.Background()

	rdb.data["cloudio:session:bad:view"] = []byte("{not json")
	_, err := store.Load(ctx, "bad")
	assert.ErrorContains(t, err, "decode session")

	rdb.failGet = errors.New("connection refused")
	_, err = store.Load(ctx, "sid")
	assert.ErrorContains(t, err, "load session")
}
