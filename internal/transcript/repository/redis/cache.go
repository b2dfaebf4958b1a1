package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"usecase-srv/internal/transcript"
	"usecase-srv/internal/transcript/repository"
)

// Transcript snapshots are short-lived: any extraction or refinement on the
// session invalidates them, so the TTL only bounds staleness on missed
// invalidations.
const transcriptTTL = 5 * time.Minute

func transcriptKey(sessionID string) string {
	return fmt.Sprintf("transcript:%s", sessionID)
}

func (r *implCacheRepository) GetTranscript(ctx context.Context, sessionID string) (transcript.TranscriptOutput, error) {
	data, err := r.redis.GetClient().Get(ctx, transcriptKey(sessionID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return transcript.TranscriptOutput{}, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "transcript.repository.redis.GetTranscript: Failed to read cache: %v", err)
		return transcript.TranscriptOutput{}, err
	}

	var snapshot transcript.TranscriptOutput
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		r.l.Errorf(ctx, "transcript.repository.redis.GetTranscript: Failed to unmarshal snapshot: %v", err)
		return transcript.TranscriptOutput{}, err
	}
	return snapshot, nil
}

func (r *implCacheRepository) SaveTranscript(ctx context.Context, sessionID string, snapshot transcript.TranscriptOutput) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	if err := r.redis.GetClient().Set(ctx, transcriptKey(sessionID), data, transcriptTTL).Err(); err != nil {
		r.l.Errorf(ctx, "transcript.repository.redis.SaveTranscript: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) InvalidateTranscript(ctx context.Context, sessionID string) error {
	if err := r.redis.GetClient().Del(ctx, transcriptKey(sessionID)).Err(); err != nil && err != goredis.Nil {
		r.l.Errorf(ctx, "transcript.repository.redis.InvalidateTranscript: Failed to delete key: %v", err)
		return err
	}
	return nil
}
