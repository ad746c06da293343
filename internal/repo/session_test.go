package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/commutepro/internal/domain"
	"github.com/pkordes/commutepro/internal/repo"
)

// newTestRepo returns a SessionRepo with generous limits so tests never see
// eviction or expiry unless they ask for it.
func newTestRepo(t *testing.T) repo.SessionRepo {
	t.Helper()
	r, err := repo.NewSessionRepo(repo.SessionOptions{MaxSessions: 100, TTL: time.Hour})
	require.NoError(t, err)
	return r
}

func setupFixture() domain.Setup {
	return domain.Setup{}.
		SaveLocations(domain.LocationData{Home: "123 Main St", Office: "456 Oak Ave"}).
		SaveOfficeWindow(domain.TimeRange{Start: "08:00", End: "09:00"})
}

func TestNewSessionRepo_rejectsBadOptions(t *testing.T) {
	_, err := repo.NewSessionRepo(repo.SessionOptions{MaxSessions: 0, TTL: time.Hour})
	assert.Error(t, err)

	_, err = repo.NewSessionRepo(repo.SessionOptions{MaxSessions: 10, TTL: 0})
	assert.Error(t, err)
}

func TestSessionRepo_Create_startsEmpty(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	id, err := r.Create(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, err := r.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Setup{}, got)
	assert.Equal(t, domain.StepNoLocations, got.Step())
}

func TestSessionRepo_Create_uniqueIDs(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	a, err := r.Create(ctx)
	require.NoError(t, err)
	b, err := r.Create(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSessionRepo_SaveThenGet(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	id, err := r.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, r.Save(ctx, id, setupFixture()))

	got, err := r.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, setupFixture(), got)
	assert.Equal(t, domain.StepNoHomeWindow, got.Step())
}

func TestSessionRepo_Get_returnsCopy(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	id, err := r.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, r.Save(ctx, id, setupFixture()))

	got, err := r.Get(ctx, id)
	require.NoError(t, err)
	got.Locations.Home = "mutated"

	again, err := r.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "123 Main St", again.Locations.Home)
}

func TestSessionRepo_Get_unknownID(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionRepo_Save_unknownID(t *testing.T) {
	r := newTestRepo(t)

	err := r.Save(context.Background(), uuid.New(), setupFixture())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionRepo_expiresWhenIdle(t *testing.T) {
	r, err := repo.NewSessionRepo(repo.SessionOptions{MaxSessions: 10, TTL: 20 * time.Millisecond})
	require.NoError(t, err)
	ctx := context.Background()

	id, err := r.Create(ctx)
	require.NoError(t, err)

	// Reads keep a session alive, so wait untouched before looking.
	time.Sleep(100 * time.Millisecond)

	_, err = r.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionRepo_readsKeepSessionAlive(t *testing.T) {
	const ttl = 300 * time.Millisecond
	r, err := repo.NewSessionRepo(repo.SessionOptions{MaxSessions: 10, TTL: ttl})
	require.NoError(t, err)
	ctx := context.Background()

	id, err := r.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, r.Save(ctx, id, setupFixture()))

	// Only reads from here on, for three times the TTL.
	deadline := time.Now().Add(3 * ttl)
	for time.Now().Before(deadline) {
		got, err := r.Get(ctx, id)
		require.NoError(t, err, "session dropped while still being read")
		assert.Equal(t, setupFixture(), got)
		time.Sleep(ttl / 6)
	}
}
