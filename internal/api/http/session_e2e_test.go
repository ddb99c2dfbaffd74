package http

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/animal-catalog/pkg/session"
)

func listen(t *testing.T, s *testServer) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = s.app.Listener(ln) }()
	t.Cleanup(func() { _ = s.app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func TestSessionAgainstServer(t *testing.T) {
	s := newTestServer(t, "test-secret")
	s.customers.put(t, "c-1", "alice", "pw1")
	s.admins.put(t, "a-1", "bob", "pw2")
	base := listen(t, s)

	var visited []string
	nav := session.NavigatorFunc(func(path string) { visited = append(visited, path) })
	storage := session.NewMemoryStorage()
	a := session.New(session.Options{API: session.NewAPIClient(base), Storage: storage, Navigator: nav})
	ctx := context.Background()

	err := a.Login(ctx, "alice", "wrong")
	assert.EqualError(t, err, "Invalid credentials")
	assert.False(t, session.AuthGuard(a, nav))

	require.NoError(t, a.Login(ctx, "alice", "pw1"))
	assert.True(t, session.AuthGuard(a, nav))
	assert.False(t, session.AdminGuard(a, nav))
	status, body := s.do(t, "GET", "/api/session", "", map[string]string{"Authorization": "Bearer " + a.Token()})
	assert.Equal(t, 200, status)
	assert.Equal(t, "alice", body["user"].(map[string]any)["username"])

	require.NoError(t, a.Login(ctx, "bob", "pw2"))
	assert.True(t, session.AdminGuard(a, nav))
	_, ok, err := storage.Get(session.KeyCustomerToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, a.Register(ctx, "carol", "pw3"))
	assert.Equal(t, "Username already exists", a.Register(ctx, "carol", "pw3").Error())

	require.NoError(t, a.Logout())
	assert.Empty(t, storage.Keys())
	assert.Equal(t, []string{session.LoginPath, session.RootPath, session.RootPath, session.AdminPath, session.RootPath}, visited)
}
