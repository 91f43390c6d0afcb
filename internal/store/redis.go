package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	redisClient "github.com/go-redis/redis/v8"

	"github.com/llehouerou/lrcsync/internal/lyrics"
)

const (
	redisKeyPrefix = "lrcsync:lyrics:"
	redisTracksKey = "lrcsync:tracks"
)

// Redis stores lyrics in Redis: one hash per track plus a set of track keys.
type Redis struct {
	client *redisClient.Client
	now    func() time.Time
}

// OpenRedis connects to the Redis server at url (redis:// or rediss://).
// A non-empty password overrides the one in url.
func OpenRedis(ctx context.Context, url, password string) (*Redis, error) {
	if url == "" {
		return nil, errors.New("redis url is not configured")
	}
	opt, err := redisClient.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opt.Password = password
	}

	client := redisClient.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Redis{client: client, now: time.Now}, nil
}

func redisKey(track lyrics.Track) string {
	return redisKeyPrefix + track.Name + "\x00" + track.Artists
}

// SaveLyrics implements Store.
func (r *Redis) SaveLyrics(ctx context.Context, track lyrics.Track, lrc string) error {
	key := redisKey(track)
	_, err := r.client.TxPipelined(ctx, func(pipe redisClient.Pipeliner) error {
		if lrc == "" {
			pipe.Del(ctx, key)
			pipe.SRem(ctx, redisTracksKey, key)
			return nil
		}
		pipe.HSet(ctx, key,
			"name", track.Name,
			"artists", track.Artists,
			"lyric", lrc,
			"updated_at", r.now().Unix(),
		)
		pipe.SAdd(ctx, redisTracksKey, key)
		return nil
	})
	return err
}

// GetLyrics implements Store.
func (r *Redis) GetLyrics(ctx context.Context, track lyrics.Track) (string, error) {
	lyric, err := r.client.HGet(ctx, redisKey(track), "lyric").Result()
	if errors.Is(err, redisClient.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return lyric, nil
}

// List implements Store, most recently updated first.
func (r *Redis) List(ctx context.Context) ([]Entry, error) {
	keys, err := r.client.SMembers(ctx, redisTracksKey).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		fields, err := r.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			continue // stale set member
		}
		entries = append(entries, entryFromHash(key, fields))
	}
	sortEntries(entries)
	return entries, nil
}

func entryFromHash(key string, fields map[string]string) Entry {
	e := Entry{
		Track: lyrics.Track{Name: fields["name"], Artists: fields["artists"]},
		Lyric: fields["lyric"],
	}
	if e.Track.Name == "" {
		name, artists, _ := strings.Cut(strings.TrimPrefix(key, redisKeyPrefix), "\x00")
		e.Track = lyrics.Track{Name: name, Artists: artists}
	}
	if ts, err := strconv.ParseInt(fields["updated_at"], 10, 64); err == nil {
		e.UpdatedAt = time.Unix(ts, 0)
	}
	return e
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].UpdatedAt.Equal(entries[j].UpdatedAt) {
			return entries[i].UpdatedAt.After(entries[j].UpdatedAt)
		}
		return entries[i].Track.String() < entries[j].Track.String()
	})
}

// Close closes the client.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Verify Redis implements Store at compile time.
var _ Store = (*Redis)(nil)
