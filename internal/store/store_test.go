package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pomoctl/internal/schedule"
	"git.home.luguber.info/inful/pomoctl/internal/timer"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestCreateLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	sched := schedule.Schedule{Repetitions: 2, Work: 30 * time.Minute, Break: 90 * time.Second}
	st := timer.New(sched, time.Date(2025, 3, 7, 9, 0, 0, 123456789, time.UTC))
	st.TotalPaused = 90*time.Second + 500*time.Millisecond
	pausedAt := st.StartedAt.Add(5 * time.Minute)
	st.PausedAt = &pausedAt

	require.NoError(t, s.Create(st))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, st.ID, loaded.ID)
	require.Equal(t, st.Schedule, loaded.Schedule)
	require.True(t, loaded.StartedAt.Equal(st.StartedAt), "StartedAt %s != %s", loaded.StartedAt, st.StartedAt)
	require.Equal(t, st.TotalPaused, loaded.TotalPaused)
	require.NotNil(t, loaded.PausedAt)
	require.True(t, loaded.PausedAt.Equal(pausedAt), "PausedAt %s != %s", loaded.PausedAt, pausedAt)

	// No temp files may survive a write.
	matches, err := filepath.Glob(filepath.Join(s.Dir(), "*.tmp"))
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestCreateWhileRunning(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Create(timer.New(schedule.Default(), time.Now())))

	err := s.Create(timer.New(schedule.Default(), time.Now()))
	require.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestEmptySlotErrors(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load()
	require.ErrorIs(t, err, ErrNotRunning)

	err = s.Update(timer.New(schedule.Default(), time.Now()))
	require.ErrorIs(t, err, ErrNotRunning)

	_, err = s.Delete()
	require.ErrorIs(t, err, ErrNotRunning)
}

func TestUpdatePersistsPause(t *testing.T) {
	s := newTestStore(t)
	st := timer.New(schedule.Default(), time.Now())
	require.NoError(t, s.Create(st))

	require.NoError(t, st.Pause(time.Now()))
	require.NoError(t, s.Update(st))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.True(t, loaded.Paused())
}

func TestDeleteReturnsFinalState(t *testing.T) {
	s := newTestStore(t)
	st := timer.New(schedule.Default(), time.Now())
	require.NoError(t, s.Create(st))

	deleted, err := s.Delete()
	require.NoError(t, err)
	require.Equal(t, st.ID, deleted.ID)

	_, err = os.Stat(s.Path())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReplace(t *testing.T) {
	s := newTestStore(t)

	first := timer.New(schedule.Default(), time.Now())
	prior, err := s.Replace(first)
	require.NoError(t, err)
	require.Nil(t, prior)

	second := timer.New(schedule.Default(), time.Now())
	prior, err = s.Replace(second)
	require.NoError(t, err)
	require.NotNil(t, prior)
	require.Equal(t, first.ID, prior.ID)

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, second.ID, loaded.ID)
}

func TestLoadRejectsCorruptRecord(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("repetitions: 0\nwork: 10m\nbreak: 5m\nstarted_at: bogus\n"), 0o644))

	_, err := s.Load()
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotRunning)
}

func TestConcurrentReadsSeeWholeRecords(t *testing.T) {
	s := newTestStore(t)
	st := timer.New(schedule.Default(), time.Now())
	require.NoError(t, s.Create(st))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				_ = st.Pause(time.Now())
			} else {
				_ = st.Resume(time.Now())
			}
			if err := s.Update(st); err != nil {
				t.Errorf("Update failed: %v", err)
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		default:
		}
		loaded, err := s.Load()
		require.NoError(t, err)
		require.Equal(t, st.ID, loaded.ID)
	}
}
