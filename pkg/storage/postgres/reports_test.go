package postgres_test

import (
	"context"
	"testing"

	"brandintel/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreReport(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	report := domain.BrandReport{
		UserID:       userID,
		Brand:        "Acme",
		OriginalURL:  "https://acme.com",
		SuspectedURL: "https://acrne.com",
		CaseID:       "ACME-20260517093045",
		Markdown:     "# BRAND INFRINGEMENT ANALYSIS REPORT",
		Filename:     "brand_infringement_report_Acme_20260517093045.md",
		Breakdown: domain.ScoreBreakdown{
			TextScore:    76.8,
			VisualScore:  100,
			OverallScore: 82,
			Tier:         domain.TierHigh,
		},
	}

	stored, err := pgSQL.StoreReport(ctx, report)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEqual(t, domain.ReportID(uuid.Nil), stored.ID)
	require.Equal(t, report.CaseID, stored.CaseID)
	require.Equal(t, report.Breakdown, stored.Breakdown)
	require.False(t, stored.CreatedAt.IsZero())
}

func TestPgSQL_ReportByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userA := domain.UserID(uuid.New())
	userB := domain.UserID(uuid.New())

	stored, err := pgSQL.StoreReport(ctx, domain.BrandReport{
		UserID:       userA,
		Brand:        "Acme",
		OriginalURL:  "https://acme.com",
		SuspectedURL: "https://acrne.com",
		CaseID:       "ACME-20260517093045",
		Markdown:     "report body",
		Filename:     "brand_infringement_report_Acme_20260517093045.md",
		Breakdown:    domain.ScoreBreakdown{OverallScore: 82, Tier: domain.TierHigh},
	})
	require.NoError(t, err)

	// correct user & id
	got, err := pgSQL.ReportByID(ctx, userA, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.ID, got.ID)
	require.Equal(t, "report body", got.Markdown)

	// wrong user should not see other's report
	got2, err := pgSQL.ReportByID(ctx, userB, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got2)

	// unknown id
	got3, err := pgSQL.ReportByID(ctx, userA, domain.ReportID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, got3)
}
