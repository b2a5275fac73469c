package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog_backend/internal/feature/auth/usecase"
)

// Connection-level failures are injected with redismock; miniredis can only
// simulate a healthy server.

func TestSessionRedis_FindByID_ConnectionError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewSessionRedis(client, "session")

	mock.ExpectGet("session:sess-1").SetErr(errors.New("connection reset"))

	_, err := repo.FindByID(context.Background(), "sess-1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrSessionNotFound, "infrastructure failures must not masquerade as a missing session")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRedis_Revoke_ConnectionError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewSessionRedis(client, "session")

	mock.ExpectGet("session:sess-1").SetErr(errors.New("connection reset"))

	err := repo.Revoke(context.Background(), "sess-1")

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRedis_Create_ConnectionError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewSessionRedis(client, "session")

	session := createTestSession("sess-1", 1, time.Hour)
	mock.CustomMatch(func(expected, actual []interface{}) error {
		// TTL depends on the wall clock; only the command and key are pinned.
		return nil
	}).ExpectSet("session:sess-1", nil, 0).SetErr(errors.New("connection reset"))

	err := repo.Create(context.Background(), session)

	assert.Error(t, err)
}
