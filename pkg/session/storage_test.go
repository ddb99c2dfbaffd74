package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()

	_, ok, err := s.Get(KeyAuthToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeyAuthToken, "t1"))
	require.NoError(t, s.Set(KeyAuthUser, `{"id":"1"}`))

	v, ok, err := s.Get(KeyAuthToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t1", v)

	require.NoError(t, s.Set(KeyAuthToken, "t2"))
	v, _, err = s.Get(KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "t2", v)

	require.NoError(t, s.Remove(KeyAuthToken))
	require.NoError(t, s.Remove(KeyAdminToken))
	_, ok, err = s.Get(KeyAuthToken)
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err = s.Get(KeyAuthUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, v)
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	exerciseStorage(t, NewFileStorage(path))
}

func TestFileStorage_SharedBetweenInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	writer := NewFileStorage(path)
	reader := NewFileStorage(path)

	require.NoError(t, writer.Set(KeyCustomerToken, "abc"))

	v, ok, err := reader.Get(KeyCustomerToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestFileStorage_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o600))

	_, _, err := NewFileStorage(path).Get(KeyAuthToken)

	assert.Error(t, err)
}

func TestRedisStorage(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	namespace := uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), "session:"+namespace) })

	exerciseStorage(t, NewRedisStorage(client, namespace))
}
