package session

import (
	"context"
	"errors"
	"sync"
)

type fakeAPI struct {
	reply       *LoginReply
	err         error
	registerErr error
	logins      int
	registered  []string
}

func (f *fakeAPI) Login(_ context.Context, _, _ string) (*LoginReply, error) {
	f.logins++
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeAPI) Register(_ context.Context, username, _ string) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	f.registered = append(f.registered, username)
	return nil
}

type recordingNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingNavigator) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recordingNavigator) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.paths) == 0 {
		return ""
	}
	return r.paths[len(r.paths)-1]
}

// flakyStorage fails writes to one key.
type flakyStorage struct {
	*MemoryStorage
	failKey string
}

var errDiskFull = errors.New("disk full")

func (f *flakyStorage) Set(key, value string) error {
	if key == f.failKey {
		return errDiskFull
	}
	return f.MemoryStorage.Set(key, value)
}

func customerReply() *LoginReply {
	return &LoginReply{Token: "tok-c", User: AuthUser{ID: "c1", Username: "alice", Role: RoleCustomer}}
}

func adminReply() *LoginReply {
	return &LoginReply{Token: "tok-a", User: AuthUser{ID: "a1", Username: "bob", Role: RoleAdmin}}
}

func mustGet(s Storage, key string) (string, bool) {
	v, ok, err := s.Get(key)
	if err != nil {
		panic(err)
	}
	return v, ok
}
