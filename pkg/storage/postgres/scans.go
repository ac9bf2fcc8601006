package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brandintel/pkg/domain"
	"brandintel/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	typoScansTable = "typo_scans"
)

func (p *PgSQL) StoreScans(ctx context.Context, scans ...domain.TypoScan) ([]domain.TypoScan, error) {
	if len(scans) == 0 {
		return nil, nil
	}

	pgScans, err := domainScansToPg(scans)
	if err != nil {
		return nil, err
	}

	var result []PgTypoScan
	if err := p.Builder.Insert(typoScansTable).
		Rows(pgScans).
		Returning(&PgTypoScan{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scans into pg: %w", err)
	}

	return pgScansToDomain(result)
}

// scanUpdateRecord builds the goqu record applied by the update operations.
// Attempts is incremented by 1 and updated_at is set on every update. When the
// target status is Failed and a MaxAttempts guard is set, status only flips to
// Failed once the incremented attempts reach the threshold, otherwise the row
// stays Pending for the next retry.
func scanUpdateRecord(updates storage.ScanUpdates) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
		"status":     updates.Status,
	}
	if updates.Status == domain.ScanStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.ScanStatusFailed))
	}
	if updates.Result != nil {
		b, err := json.Marshal(updates.Result)
		if err != nil {
			return nil, fmt.Errorf("could not marshal result: %w", err)
		}

		rec["result"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec, nil
}

// UpdatePendingScansByDomain updates all pending scans for the given domain
// name with provided fields. Only non-nil fields from updates are set.
func (p *PgSQL) UpdatePendingScansByDomain(ctx context.Context,
	domainName string,
	updates storage.ScanUpdates) error {
	rec, err := scanUpdateRecord(updates)
	if err != nil {
		return err
	}

	_, err = p.Builder.Update(typoScansTable).
		Set(rec).Where(
		goqu.I("domain").Eq(domainName),
		goqu.I("status").Eq(string(domain.ScanStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending scans by domain in pg: %w", err)
	}

	return nil
}

// PendingScanCountByDomain counts pending, non-deleted scans for the given
// domain name across all users.
func (p *PgSQL) PendingScanCountByDomain(ctx context.Context, domainName string) (int64, error) {
	count, err := p.Builder.From(typoScansTable).
		Where(
			goqu.I("domain").Eq(domainName),
			goqu.I("status").Eq(string(domain.ScanStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending scans by domain in pg: %w", err)
	}

	return count, nil
}

// UpdateScanByID updates a single scan identified by its ID and returns the
// updated row, or nil when no matching row exists.
func (p *PgSQL) UpdateScanByID(ctx context.Context,
	id domain.ScanID,
	updates storage.ScanUpdates) (*domain.TypoScan, error) {
	rec, err := scanUpdateRecord(updates)
	if err != nil {
		return nil, err
	}

	var row PgTypoScan
	found, err := p.Builder.Update(typoScansTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgTypoScan{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update scan by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteScan performs a soft delete by setting deleted_at timestamp
// for a given scan id and user, returning the deleted record.
func (p *PgSQL) DeleteScan(ctx context.Context, userID domain.UserID, id domain.ScanID) (*domain.TypoScan, error) {
	var row PgTypoScan
	found, err := p.Builder.Update(typoScansTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgTypoScan{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete scan in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserScans returns a list of scans for a user filtered by optional status and
// cursor and limited by limit. Results are ordered by created_at DESC, id DESC.
func (p *PgSQL) UserScans(ctx context.Context,
	userID domain.UserID,
	status domain.ScanStatus,
	cursor time.Time,
	limit uint) (storage.UserScans, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(typoScansTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgTypoScan
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserScans{}, fmt.Errorf("could not fetch user scans from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgScansToDomain(rows)
	if err != nil {
		return storage.UserScans{}, err
	}

	return storage.UserScans{
		Scans:      domainRows,
		NextCursor: nextCursor,
	}, nil
}

// ScanByID returns a scan by its ID, excluding soft-deleted rows.
func (p *PgSQL) ScanByID(ctx context.Context, userID domain.UserID, id domain.ScanID) (*domain.TypoScan, error) {
	var row PgTypoScan
	found, err := p.Builder.From(typoScansTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LastCompletedScanByDomain returns the most recent completed, non-deleted scan
// for the given domain name across all users, or nil when none exists.
func (p *PgSQL) LastCompletedScanByDomain(ctx context.Context, domainName string) (*domain.TypoScan, error) {
	var row PgTypoScan
	found, err := p.Builder.From(typoScansTable).
		Where(
			goqu.I("domain").Eq(domainName),
			goqu.I("status").Eq(string(domain.ScanStatusCompleted)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("updated_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last completed scan by domain: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
