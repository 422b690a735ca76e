// Package cache keeps lecture details close to the read path. Entries are
// dropped on every mutation of the lecture, so a miss is always safe.
//
// Every invalidation also bumps a per-lecture generation. A reader takes the
// generation before loading the record and hands it back to Set, which stores
// nothing if a mutation landed in between.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"seminary/pkg/logger"
	"seminary/services/seminary/internal/entity"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 10 * time.Minute

// generationTTL outlives any read that could still be holding a generation.
const generationTTL = 24 * time.Hour

type LectureCache interface {
	Get(ctx context.Context, id string) (*entity.Lecture, bool)
	// Generation must be read before the lecture is loaded from storage.
	Generation(ctx context.Context, id string) int64
	// Set stores lecture only while its generation is still gen.
	Set(ctx context.Context, lecture *entity.Lecture, gen int64)
	Invalidate(ctx context.Context, id string)
}

func lectureKey(id string) string {
	return fmt.Sprintf("lecture:%s", id)
}

func generationKey(id string) string {
	return lectureKey(id) + ":gen"
}

// setIfCurrent writes KEYS[1] only when KEYS[2] still holds ARGV[1].
var setIfCurrent = redis.NewScript(`
local gen = redis.call('GET', KEYS[2]) or '0'
if gen ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

type redisLectureCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisLectureCache stores JSON-encoded lectures under lecture:<id>.
// Redis errors are logged and treated as misses.
func NewRedisLectureCache(client *redis.Client, ttl time.Duration, log *logger.Logger) LectureCache {
	return &redisLectureCache{client: client, ttl: ttl, logger: log}
}

func (c *redisLectureCache) Get(ctx context.Context, id string) (*entity.Lecture, bool) {
	data, err := c.client.Get(ctx, lectureKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Lecture cache read failed for %s: %v", id, err)
		}
		return nil, false
	}

	var lecture entity.Lecture
	if err := json.Unmarshal(data, &lecture); err != nil {
		c.logger.Warn("Dropping undecodable cache entry for %s: %v", id, err)
		c.Invalidate(ctx, id)
		return nil, false
	}
	return &lecture, true
}

// Generation returns -1 when redis cannot answer, which no Set will match.
func (c *redisLectureCache) Generation(ctx context.Context, id string) int64 {
	gen, err := c.client.Get(ctx, generationKey(id)).Int64()
	if err == redis.Nil {
		return 0
	}
	if err != nil {
		c.logger.Warn("Lecture cache generation read failed for %s: %v", id, err)
		return -1
	}
	return gen
}

func (c *redisLectureCache) Set(ctx context.Context, lecture *entity.Lecture, gen int64) {
	if gen < 0 {
		return
	}
	data, err := json.Marshal(lecture)
	if err != nil {
		c.logger.Warn("Failed to encode lecture %s for cache: %v", lecture.ID, err)
		return
	}
	keys := []string{lectureKey(lecture.ID), generationKey(lecture.ID)}
	if err := setIfCurrent.Run(ctx, c.client, keys, strconv.FormatInt(gen, 10), data, c.ttl.Milliseconds()).Err(); err != nil {
		c.logger.Warn("Lecture cache write failed for %s: %v", lecture.ID, err)
	}
}

func (c *redisLectureCache) Invalidate(ctx context.Context, id string) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(id))
		pipe.Expire(ctx, generationKey(id), generationTTL)
		pipe.Del(ctx, lectureKey(id))
		return nil
	})
	if err != nil {
		c.logger.Warn("Lecture cache invalidation failed for %s: %v", id, err)
	}
}

type memoryLectureCache struct {
	mu          sync.Mutex
	items       *gocache.Cache
	generations map[string]int64
}

// NewMemoryLectureCache is the in-process fallback used when redis is not
// reachable.
func NewMemoryLectureCache(ttl time.Duration) LectureCache {
	return &memoryLectureCache{
		items:       gocache.New(ttl, 2*ttl),
		generations: make(map[string]int64),
	}
}

func (c *memoryLectureCache) Get(_ context.Context, id string) (*entity.Lecture, bool) {
	v, ok := c.items.Get(lectureKey(id))
	if !ok {
		return nil, false
	}
	return clone(v.(*entity.Lecture)), true
}

func (c *memoryLectureCache) Generation(_ context.Context, id string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[id]
}

func (c *memoryLectureCache) Set(_ context.Context, lecture *entity.Lecture, gen int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[lecture.ID] != gen {
		return
	}
	c.items.SetDefault(lectureKey(lecture.ID), clone(lecture))
}

func (c *memoryLectureCache) Invalidate(_ context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[id]++
	c.items.Delete(lectureKey(id))
}

func clone(l *entity.Lecture) *entity.Lecture {
	cp := *l
	cp.Materials = append([]entity.Material(nil), l.Materials...)
	return &cp
}
