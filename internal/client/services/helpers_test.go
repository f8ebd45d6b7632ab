package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/devices"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/kv"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/session"
	"github.com/dmitrijs2005/devprofiler/internal/dbx"
	"github.com/dmitrijs2005/devprofiler/internal/logging"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    kv.Store
	accounts AccountService
	sessions SessionService
	devices  DeviceService
}

func newStore(t *testing.T) kv.Store {
	t.Helper()
	ctx := context.Background()
	db, err := dbx.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, kv.RunMigrations(ctx, db, logging.Discard()))
	s := kv.NewSQLiteStore(db)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	stubIDs(t)

	s := newStore(t)
	log := logging.Discard()
	accRepo := accounts.NewKVRepository(s)

	return &fixture{
		store:    s,
		accounts: NewAccountService(accRepo, log),
		sessions: NewSessionService(session.NewKVRepository(s), accRepo, log),
		devices:  NewDeviceService(devices.NewKVRepository(s), log),
	}
}

// stubIDs makes generated ids and timestamps deterministic for one test.
func stubIDs(t *testing.T) {
	t.Helper()
	origID, origNow := newID, now
	var n atomic.Int64
	newID = func() string { return fmt.Sprintf("id-%d", n.Add(1)) }
	now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { newID, now = origID, origNow })
}
