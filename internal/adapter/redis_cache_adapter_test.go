package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizclip/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapterGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(client)

	mock.ExpectGet("quizclip:pipeline:transcript:abc").SetVal("a transcript")

	val, err := cacheAdapter.Get(context.Background(), "quizclip:pipeline:transcript:abc")

	require.NoError(t, err)
	assert.Equal(t, "a transcript", val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapterGetMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(client)

	mock.ExpectGet("missing").RedisNil()

	_, err := cacheAdapter.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestRedisCacheAdapterGetError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(client)

	mock.ExpectGet("key").SetErr(errors.New("connection refused"))

	_, err := cacheAdapter.Get(context.Background(), "key")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCacheMiss)
}

func TestRedisCacheAdapterSet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(client)

	mock.ExpectSet("key", "value", 24*time.Hour).SetVal("OK")

	err := cacheAdapter.Set(context.Background(), "key", "value", 24*time.Hour)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapterDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(client)

	mock.ExpectDel("key").SetVal(1)

	err := cacheAdapter.Delete(context.Background(), "key")

	require.NoError(t, err)
}

func TestRedisCacheAdapterPing(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(client)

	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, cacheAdapter.Ping(context.Background()))
}
