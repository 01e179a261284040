package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionTTL = time.Hour

func TestScoreRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	scoreRepo := NewScoreRepository(st.Storage, sessionTTL)

	// Given: a session tally
	tally := entity.ScoreTally{Player1Wins: 2, Player2Wins: 1}

	// When: Save is called
	err := scoreRepo.Save(ctx, "session-1", tally)

	// Then: no error should be returned, and the key expires with the session
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "score:session-1").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, sessionTTL)
}

func TestScoreRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Storage, sessionTTL)

		// Given: a saved tally that was later updated
		require.NoError(t, scoreRepo.Save(ctx, "session-1", entity.ScoreTally{Player1Wins: 1}))
		require.NoError(t, scoreRepo.Save(ctx, "session-1", entity.ScoreTally{Player1Wins: 1, Player2Wins: 3}))

		// When: GetByID is called
		tally, err := scoreRepo.GetByID(ctx, "session-1")

		// Then: the latest tally is returned
		require.NoError(t, err)
		assert.Equal(t, entity.ScoreTally{Player1Wins: 1, Player2Wins: 3}, tally)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Storage, sessionTTL)

		// When: GetByID is called with an unknown session
		tally, err := scoreRepo.GetByID(ctx, "9999999")

		// Then: an ErrScoreNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrScoreNotFound)
		assert.Equal(t, entity.ScoreTally{}, tally)
	})
}

func TestScoreRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Storage, sessionTTL)

		// Given: a saved tally
		require.NoError(t, scoreRepo.Save(ctx, "session-1", entity.ScoreTally{Player2Wins: 1}))

		// When: DeleteByID is called at session end
		err := scoreRepo.DeleteByID(ctx, "session-1")

		// Then: the tally is gone
		require.NoError(t, err)

		_, err = scoreRepo.GetByID(ctx, "session-1")
		require.ErrorIs(t, err, apperror.ErrScoreNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Storage, sessionTTL)

		// When: DeleteByID is called with an unknown session
		err := scoreRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrScoreNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrScoreNotFound)
	})
}
