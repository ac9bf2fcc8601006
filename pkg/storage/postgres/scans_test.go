package postgres_test

import (
	"context"
	"testing"
	"time"

	"brandintel/pkg/domain"
	"brandintel/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreScans(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	t.Run("store single scan", func(t *testing.T) {
		t.Parallel()

		s := domain.TypoScan{
			UserID: userID,
			Domain: "google.com",
			Status: domain.ScanStatusPending,
		}

		res, err := pgSQL.StoreScans(ctx, s)
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, "google.com", res[0].Domain)
		require.NotEqual(t, domain.ScanID(uuid.Nil), res[0].ID)
	})

	t.Run("store multiple scans", func(t *testing.T) {
		t.Parallel()

		s1 := domain.TypoScan{
			UserID: userID,
			Domain: "google.com",
			Status: domain.ScanStatusPending,
		}
		s2 := domain.TypoScan{
			UserID: userID,
			Domain: "yahoo.com",
			Status: domain.ScanStatusPending,
		}

		res, err := pgSQL.StoreScans(ctx, s1, s2)
		require.NoError(t, err)
		require.Len(t, res, 2)
	})

	t.Run("store empty scans", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreScans(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_UpdatePendingScansByDomain(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	domainA := "update-a.com"
	domainB := "update-b.com"

	// insert scans
	s1 := domain.TypoScan{UserID: userID, Domain: domainA, Status: domain.ScanStatusPending}
	s2 := domain.TypoScan{UserID: userID, Domain: domainA, Status: domain.ScanStatusPending}
	s3 := domain.TypoScan{UserID: userID, Domain: domainA, Status: domain.ScanStatusCompleted}
	s4 := domain.TypoScan{UserID: userID, Domain: domainB, Status: domain.ScanStatusPending}
	ins, err := pgSQL.StoreScans(ctx, s1, s2, s3, s4)
	require.NoError(t, err)
	require.Len(t, ins, 4)

	// update only pending scans for domainA
	empty := ""
	result := domain.TypoScanResult{
		OriginalDomain:  domainA,
		VariantsChecked: 3,
		RegisteredVariants: []domain.RegistrationRecord{
			{Domain: "updat-a.com", Registered: true, Registrar: "Example Registrar"},
		},
	}
	require.NoError(t, pgSQL.UpdatePendingScansByDomain(ctx, domainA, storage.ScanUpdates{
		Status:    domain.ScanStatusCompleted,
		Result:    &result,
		LastError: &empty, // clear last_error to NULL
	}))

	// fetch all user scans and validate
	page, err := pgSQL.UserScans(ctx, userID, "", time.Time{}, 50)
	require.NoError(t, err)

	// build index by id
	byID := map[uuid.UUID]domain.TypoScan{}
	for _, sc := range page.Scans {
		byID[uuid.UUID(sc.ID)] = sc
	}

	// assertions for s1, s2 updated
	for i := range 2 {
		sc := byID[uuid.UUID(ins[i].ID)]
		require.Equal(t, domain.ScanStatusCompleted, sc.Status)
		require.EqualValues(t, 1, sc.Attempts)
		require.False(t, sc.UpdatedAt.IsZero())
		require.Empty(t, sc.LastError)
		require.Equal(t, result, sc.Result)
	}
	// s3 (completed) should remain with attempts 0
	sc3 := byID[uuid.UUID(ins[2].ID)]
	require.EqualValues(t, 0, sc3.Attempts)
	// s4 for domainB should remain pending
	sc4 := byID[uuid.UUID(ins[3].ID)]
	require.Equal(t, domain.ScanStatusPending, sc4.Status)
}

func TestPgSQL_UpdatePendingScansByDomain_MaxAttemptsGuard(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	name := "guard.com"
	ins, err := pgSQL.StoreScans(ctx, domain.TypoScan{
		UserID: userID,
		Domain: name,
		Status: domain.ScanStatusPending,
	})
	require.NoError(t, err)
	require.Len(t, ins, 1)

	boom := "whois lookup failed"
	failedUpdate := storage.ScanUpdates{
		Status:      domain.ScanStatusFailed,
		LastError:   &boom,
		MaxAttempts: 2,
	}

	// first failure stays pending, attempts goes to 1
	require.NoError(t, pgSQL.UpdatePendingScansByDomain(ctx, name, failedUpdate))
	got, err := pgSQL.ScanByID(ctx, userID, ins[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.ScanStatusPending, got.Status)
	require.EqualValues(t, 1, got.Attempts)
	require.Equal(t, boom, got.LastError)

	// second failure reaches the threshold and flips to failed
	require.NoError(t, pgSQL.UpdatePendingScansByDomain(ctx, name, failedUpdate))
	got, err = pgSQL.ScanByID(ctx, userID, ins[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.ScanStatusFailed, got.Status)
	require.EqualValues(t, 2, got.Attempts)
}

func TestPgSQL_PendingScanCountByDomain(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userA := domain.UserID(uuid.New())
	userB := domain.UserID(uuid.New())
	name := "count.com"

	_, err := pgSQL.StoreScans(ctx,
		domain.TypoScan{UserID: userA, Domain: name, Status: domain.ScanStatusPending},
		domain.TypoScan{UserID: userB, Domain: name, Status: domain.ScanStatusPending},
		domain.TypoScan{UserID: userA, Domain: name, Status: domain.ScanStatusCompleted},
		domain.TypoScan{UserID: userA, Domain: "other.com", Status: domain.ScanStatusPending},
	)
	require.NoError(t, err)

	// pending scans are counted across users
	count, err := pgSQL.PendingScanCountByDomain(ctx, name)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	count, err = pgSQL.PendingScanCountByDomain(ctx, "missing.com")
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestPgSQL_UpdateScanByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	ins, err := pgSQL.StoreScans(ctx, domain.TypoScan{
		UserID: userID,
		Domain: "byid.com",
		Status: domain.ScanStatusPending,
	})
	require.NoError(t, err)

	result := domain.TypoScanResult{OriginalDomain: "byid.com", VariantsChecked: 7}
	updated, err := pgSQL.UpdateScanByID(ctx, ins[0].ID, storage.ScanUpdates{
		Status: domain.ScanStatusCompleted,
		Result: &result,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, domain.ScanStatusCompleted, updated.Status)
	require.EqualValues(t, 1, updated.Attempts)
	require.Equal(t, result, updated.Result)

	// unknown id returns nil
	missing, err := pgSQL.UpdateScanByID(ctx, domain.ScanID(uuid.New()), storage.ScanUpdates{
		Status: domain.ScanStatusCompleted,
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteScan(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	s := domain.TypoScan{UserID: userID, Domain: "delete.me", Status: domain.ScanStatusPending}
	stored, err := pgSQL.StoreScans(ctx, s)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	id := stored[0].ID

	// delete
	deleted, err := pgSQL.DeleteScan(ctx, userID, id)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, id, deleted.ID)
	// fetching by id should return nil
	got, err := pgSQL.ScanByID(ctx, userID, id)
	require.NoError(t, err)
	require.Nil(t, got)
	// listing should not include it
	page, err := pgSQL.UserScans(ctx, userID, "", time.Time{}, 10)
	require.NoError(t, err)
	for _, sc := range page.Scans {
		require.NotEqual(t, id, sc.ID)
	}
	// deleting again should not error
	deleted2, err := pgSQL.DeleteScan(ctx, userID, id)
	require.NoError(t, err)
	require.Nil(t, deleted2)
}

func TestPgSQL_UserScans_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	// insert 5 scans
	scans := make([]domain.TypoScan, 0, 5)
	for range 5 {
		sc := domain.TypoScan{UserID: userID, Domain: uuid.NewString() + ".example", Status: domain.ScanStatusPending}
		scans = append(scans, sc)
	}
	stored, err := pgSQL.StoreScans(ctx, scans...)
	require.NoError(t, err)
	require.Len(t, stored, 5)

	// adjust created_at to be deterministic descending: now, now-1m, ...
	now := time.Now().UTC()
	for i, sc := range stored {
		created := now.Add(-time.Duration(4-i) * time.Minute) // stored order is same as input; make last newest
		_, err := pgSQL.DB.ExecContext(ctx, "UPDATE typo_scans SET created_at = $1 WHERE id = $2", created, uuid.UUID(sc.ID))
		require.NoError(t, err)
	}

	// first page, limit 2
	p1, err := pgSQL.UserScans(ctx, userID, "", time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, p1.Scans, 2)
	require.NotNil(t, p1.NextCursor)
	c1 := *p1.NextCursor

	// second page
	p2, err := pgSQL.UserScans(ctx, userID, "", c1, 2)
	require.NoError(t, err)
	require.Len(t, p2.Scans, 2)
	require.NotNil(t, p2.NextCursor)
	c2 := *p2.NextCursor

	// third (last) page, should have 1 left and no next cursor
	p3, err := pgSQL.UserScans(ctx, userID, "", c2, 2)
	require.NoError(t, err)
	require.Len(t, p3.Scans, 1)
	require.Nil(t, p3.NextCursor)
}

func TestPgSQL_UserScans_StatusFilter(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	_, err := pgSQL.StoreScans(ctx,
		domain.TypoScan{UserID: userID, Domain: "filter-a.com", Status: domain.ScanStatusPending},
		domain.TypoScan{UserID: userID, Domain: "filter-b.com", Status: domain.ScanStatusCompleted},
		domain.TypoScan{UserID: userID, Domain: "filter-c.com", Status: domain.ScanStatusFailed},
	)
	require.NoError(t, err)

	page, err := pgSQL.UserScans(ctx, userID, domain.ScanStatusCompleted, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Scans, 1)
	require.Equal(t, "filter-b.com", page.Scans[0].Domain)

	page, err = pgSQL.UserScans(ctx, userID, "", time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Scans, 3)
}

func TestPgSQL_ScanByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userA := domain.UserID(uuid.New())
	userB := domain.UserID(uuid.New())
	storedA, err := pgSQL.StoreScans(ctx, domain.TypoScan{
		UserID: userA,
		Domain: "id-a.test",
		Status: domain.ScanStatusPending,
	})
	require.NoError(t, err)
	storedB, err := pgSQL.StoreScans(ctx, domain.TypoScan{
		UserID: userB,
		Domain: "id-b.test",
		Status: domain.ScanStatusPending,
	})
	require.NoError(t, err)
	idA := storedA[0].ID
	idB := storedB[0].ID

	// correct user & id
	got, err := pgSQL.ScanByID(ctx, userA, idA)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, idA, got.ID)

	// wrong user should not see other's scan
	got2, err := pgSQL.ScanByID(ctx, userA, idB)
	require.NoError(t, err)
	require.Nil(t, got2)

	// soft delete and ensure not returned
	_, err = pgSQL.DeleteScan(ctx, userA, idA)
	require.NoError(t, err)
	got3, err := pgSQL.ScanByID(ctx, userA, idA)
	require.NoError(t, err)
	require.Nil(t, got3)
}

func TestPgSQL_LastCompletedScanByDomain(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userA := domain.UserID(uuid.New())
	userB := domain.UserID(uuid.New())
	name := "last.com"

	// no completed scan yet
	got, err := pgSQL.LastCompletedScanByDomain(ctx, name)
	require.NoError(t, err)
	require.Nil(t, got)

	stored, err := pgSQL.StoreScans(ctx,
		domain.TypoScan{UserID: userA, Domain: name, Status: domain.ScanStatusCompleted},
		domain.TypoScan{UserID: userB, Domain: name, Status: domain.ScanStatusCompleted},
		domain.TypoScan{UserID: userA, Domain: name, Status: domain.ScanStatusPending},
	)
	require.NoError(t, err)

	// make the second row the most recently updated one
	now := time.Now().UTC()
	_, err = pgSQL.DB.ExecContext(ctx,
		"UPDATE typo_scans SET updated_at = $1 WHERE id = $2", now.Add(-time.Hour), uuid.UUID(stored[0].ID))
	require.NoError(t, err)
	_, err = pgSQL.DB.ExecContext(ctx,
		"UPDATE typo_scans SET updated_at = $1 WHERE id = $2", now, uuid.UUID(stored[1].ID))
	require.NoError(t, err)

	got, err = pgSQL.LastCompletedScanByDomain(ctx, name)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored[1].ID, got.ID)
}
