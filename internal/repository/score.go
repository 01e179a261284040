package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// ScoreRepository mirrors a session's tally so another process can read it.
// Keys expire with the session TTL and are deleted when the session ends.
type ScoreRepository interface {
	Save(ctx context.Context, sessionID string, tally entity.ScoreTally) error
	GetByID(ctx context.Context, sessionID string) (entity.ScoreTally, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type dbScore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewScoreRepository(client *redis.Client, ttl time.Duration) ScoreRepository {
	return &dbScore{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbScore) Save(ctx context.Context, sessionID string, tally entity.ScoreTally) error {
	tallyJSON, err := json.Marshal(tally)
	if err != nil {
		return fmt.Errorf("could not marshal score: %w", err)
	}

	err = that.client.Set(ctx, scoreKey(sessionID), tallyJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set score: %w", err)
	}

	return nil
}

func (that *dbScore) GetByID(ctx context.Context, sessionID string) (entity.ScoreTally, error) {
	response, err := that.client.Get(ctx, scoreKey(sessionID)).Result()

	if errors.Is(err, redis.Nil) {
		return entity.ScoreTally{}, apperror.ErrScoreNotFound
	}

	if err != nil {
		return entity.ScoreTally{}, fmt.Errorf("failed to get score by id: %w", err)
	}

	var tally entity.ScoreTally
	if err = json.Unmarshal([]byte(response), &tally); err != nil {
		return entity.ScoreTally{}, fmt.Errorf("failed to unmarshal score: %w", err)
	}

	return tally, nil
}

func (that *dbScore) DeleteByID(ctx context.Context, sessionID string) error {
	deleted, err := that.client.Del(ctx, scoreKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete score by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrScoreNotFound
	}

	return nil
}

func scoreKey(sessionID string) string {
	return "score:" + sessionID
}
