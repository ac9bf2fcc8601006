package v1handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"brandintel/internal/api/handler/v1handler"
	mockbrandscan "brandintel/internal/brandscan/mock"
	mockreport "brandintel/internal/report/mock"
	"brandintel/pkg/domain"
	"brandintel/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// newTestRouter mounts the v1 routes behind a middleware injecting the given
// user ID, the way the security handler would after authentication.
func newTestRouter(h *v1handler.Handler, userID domain.UserID) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), v1handler.UserIDKey, userID)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Group(h.Routes)

	return r
}

func newScanTestHandler(t *testing.T) (*mockbrandscan.MockService, http.Handler, domain.UserID) {
	t.Helper()
	ctrl := gomock.NewController(t)
	scans := mockbrandscan.NewMockService(ctrl)
	reports := mockreport.NewMockService(ctrl)
	h := v1handler.New(v1handler.Deps{Scans: scans, Reports: reports})
	userID := domain.UserID(uuid.New())

	return scans, newTestRouter(h, userID), userID
}

// sampleScan constructs a minimal domain.TypoScan for tests.
func sampleScan(userID domain.UserID, domainName string) domain.TypoScan {
	id := uuid.New()

	return domain.TypoScan{
		ID:     domain.ScanID(id),
		UserID: userID,
		Domain: domainName,
		Status: domain.ScanStatusCompleted,
		Result: domain.TypoScanResult{
			OriginalDomain:  domainName,
			VariantsChecked: []string{"x" + domainName},
		},
		Attempts:  1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestHandler_CreateScan(t *testing.T) {
	scans, router, userID := newScanTestHandler(t)

	scan := sampleScan(userID, "e.com")
	scans.EXPECT().Enqueue(gomock.Any(), userID, "e.com").Return(&scan, nil)

	req := httptest.NewRequest(http.MethodPost, "/scans", strings.NewReader(`{"domain":"e.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got v1handler.Scan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uuid.UUID(scan.ID), got.ID)
	require.Equal(t, "e.com", got.Domain)
	require.Equal(t, domain.ScanStatusCompleted, got.Status)
	require.NotNil(t, got.UpdatedAt)
}

func TestHandler_CreateScan_BadBody(t *testing.T) {
	_, router, _ := newScanTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/scans", strings.NewReader(`{"domain":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateScan_ServiceErrorMapped(t *testing.T) {
	scans, router, userID := newScanTestHandler(t)

	scans.EXPECT().Enqueue(gomock.Any(), userID, "bad host").
		Return(nil, serrors.With(serrors.ErrBadRequest, "invalid domain"))

	req := httptest.NewRequest(http.MethodPost, "/scans", strings.NewReader(`{"domain":"bad host"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid domain")
}

func TestHandler_GetScan(t *testing.T) {
	scans, router, userID := newScanTestHandler(t)

	scan := sampleScan(userID, "abc.xyz")
	scans.EXPECT().Result(gomock.Any(), userID, scan.ID).Return(&scan, nil)

	req := httptest.NewRequest(http.MethodGet, "/scans/"+uuid.UUID(scan.ID).String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got v1handler.Scan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "abc.xyz", got.Domain)
	require.Equal(t, []string{"xabc.xyz"}, got.Result.VariantsChecked)
}

func TestHandler_GetScan_InvalidID(t *testing.T) {
	_, router, _ := newScanTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/scans/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetScan_NotFound(t *testing.T) {
	scans, router, userID := newScanTestHandler(t)

	id := uuid.New()
	scans.EXPECT().Result(gomock.Any(), userID, domain.ScanID(id)).
		Return(nil, serrors.With(serrors.ErrNotFound, "scan not found"))

	req := httptest.NewRequest(http.MethodGet, "/scans/"+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_DeleteScan(t *testing.T) {
	scans, router, userID := newScanTestHandler(t)

	id := uuid.New()
	scans.EXPECT().Delete(gomock.Any(), userID, domain.ScanID(id)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/scans/"+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_ListScans_DefaultLimitAndCursor(t *testing.T) {
	scans, router, userID := newScanTestHandler(t)

	s1 := sampleScan(userID, "a.com")
	s2 := sampleScan(userID, "b.com")
	scans.EXPECT().UserScans(gomock.Any(), userID, domain.ScanStatus(""), "", uint(v1handler.DefaultLimit)).
		Return([]domain.TypoScan{s1, s2}, "cursor123", nil)

	req := httptest.NewRequest(http.MethodGet, "/scans", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got v1handler.ScanList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Items, 2)
	require.Equal(t, "cursor123", got.NextCursor)
}

func TestHandler_ListScans_CustomParams(t *testing.T) {
	scans, router, userID := newScanTestHandler(t)

	scans.EXPECT().UserScans(gomock.Any(), userID, domain.ScanStatusPending, "c0", uint(5)).
		Return([]domain.TypoScan{}, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/scans?status=PENDING&cursor=c0&limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got v1handler.ScanList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Empty(t, got.Items)
	require.Empty(t, got.NextCursor)
}

func TestHandler_ListScans_InvalidLimit(t *testing.T) {
	_, router, _ := newScanTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/scans?limit=zero", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
