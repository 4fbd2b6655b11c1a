package housekeeping

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mockRepo struct {
	completed int64
	err       error
	calls     int
}

func (m *mockRepo) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	m.calls++
	return m.completed, m.err
}

type mockSessions struct {
	evicted int
	calls   int
}

func (m *mockSessions) EvictExpired(now time.Time) int {
	m.calls++
	return m.evicted
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestRun_ExecutesBothJobs(t *testing.T) {
	repo := &mockRepo{completed: 3}
	sessions := &mockSessions{evicted: 2}
	svc := NewService(repo, sessions, &fakeClock{now: time.Now()}, nopLogger{}, "*/10 * * * *")

	svc.run()

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, sessions.calls)
}

func TestRun_RepositoryErrorDoesNotStopEviction(t *testing.T) {
	repo := &mockRepo{err: errors.New("db down")}
	sessions := &mockSessions{}
	svc := NewService(repo, sessions, &fakeClock{now: time.Now()}, nopLogger{}, "*/10 * * * *")

	svc.run()

	assert.Equal(t, 1, sessions.calls, "session eviction runs even when the db job fails")
}

func TestStart_InvalidSchedule(t *testing.T) {
	svc := NewService(&mockRepo{}, &mockSessions{}, &fakeClock{now: time.Now()}, nopLogger{}, "not a schedule")
	assert.Error(t, svc.Start())
}
