package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w1pns/wfd-logger/internal/domain"
	"github.com/w1pns/wfd-logger/internal/handler"
)

// mockSetupServicer is a test double for handler.SetupServicer.
type mockSetupServicer struct {
	create   func(ctx context.Context, s domain.StationSetup) (domain.StationSetup, error)
	getByID  func(ctx context.Context, id uuid.UUID) (domain.StationSetup, error)
	list     func(ctx context.Context) ([]domain.StationSetup, error)
	update   func(ctx context.Context, s domain.StationSetup) (domain.StationSetup, error)
	delete   func(ctx context.Context, id uuid.UUID) error
	activate func(ctx context.Context, id uuid.UUID) (domain.StationSetup, error)
}

func (m *mockSetupServicer) Create(ctx context.Context, s domain.StationSetup) (domain.StationSetup, error) {
	return m.create(ctx, s)
}
func (m *mockSetupServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.StationSetup, error) {
	return m.getByID(ctx, id)
}
func (m *mockSetupServicer) List(ctx context.Context) ([]domain.StationSetup, error) {
	return m.list(ctx)
}
func (m *mockSetupServicer) Update(ctx context.Context, s domain.StationSetup) (domain.StationSetup, error) {
	return m.update(ctx, s)
}
func (m *mockSetupServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockSetupServicer) Activate(ctx context.Context, id uuid.UUID) (domain.StationSetup, error) {
	return m.activate(ctx, id)
}

// compile-time check: mockSetupServicer must satisfy handler.SetupServicer.
var _ handler.SetupServicer = (*mockSetupServicer)(nil)

// ---- helpers -----------------------------------------------------------------

func newSetupRouter(svc handler.SetupServicer) http.Handler {
	return handler.NewServer(nil, svc, nil, nil).Routes()
}

func setupFixture() domain.StationSetup {
	return domain.StationSetup{
		ID:                  uuid.New(),
		Name:                "Home QTH",
		StationCallsign:     "W1PNS",
		OperatorName:        "Alex Moss",
		OperatorCallsign:    "W1PNS",
		TxCount:             1,
		Class:               domain.ClassHome,
		Section:             "EPA",
		Timezone:            "America/New_York",
		AdditionalOperators: []string{},
		CreatedAt:           time.Now().UTC(),
		UpdatedAt:           time.Now().UTC(),
	}
}

// ---- POST /setups ------------------------------------------------------------

func TestCreateSetup_Created(t *testing.T) {
	stored := setupFixture()
	h := newSetupRouter(&mockSetupServicer{
		create: func(_ context.Context, _ domain.StationSetup) (domain.StationSetup, error) {
			return stored, nil
		},
	})

	body := jsonBody(t, map[string]any{
		"name":             "Home QTH",
		"station_callsign": "W1PNS",
		"tx_count":         1,
		"class":            "H",
		"section":          "EPA",
	})
	req := httptest.NewRequest(http.MethodPost, "/setups", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1H EPA", resp["exchange"], "exchange rendered from setup fields")
	assert.Equal(t, false, resp["is_active"], "new setups start inactive")
}

func TestCreateSetup_ValidationError(t *testing.T) {
	h := newSetupRouter(&mockSetupServicer{
		create: func(_ context.Context, _ domain.StationSetup) (domain.StationSetup, error) {
			return domain.StationSetup{}, fmt.Errorf("%w: unknown section %q", domain.ErrValidation, "ZZZ")
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/setups", jsonBody(t, map[string]any{}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /setups -------------------------------------------------------------

func TestListSetups_OK(t *testing.T) {
	h := newSetupRouter(&mockSetupServicer{
		list: func(_ context.Context) ([]domain.StationSetup, error) {
			return []domain.StationSetup{setupFixture(), setupFixture()}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/setups", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// ---- DELETE /setups/{id} -----------------------------------------------------

func TestDeleteSetup_ActiveRefused(t *testing.T) {
	h := newSetupRouter(&mockSetupServicer{
		delete: func(_ context.Context, _ uuid.UUID) error {
			return fmt.Errorf("%w: cannot delete the active setup", domain.ErrValidation)
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/setups/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteSetup_NotFound(t *testing.T) {
	h := newSetupRouter(&mockSetupServicer{
		delete: func(_ context.Context, _ uuid.UUID) error {
			return domain.ErrNotFound
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/setups/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- POST /setups/{id}/activate ------------------------------------------------

func TestActivateSetup_OK(t *testing.T) {
	id := uuid.New()
	h := newSetupRouter(&mockSetupServicer{
		activate: func(_ context.Context, got uuid.UUID) (domain.StationSetup, error) {
			assert.Equal(t, id, got)
			s := setupFixture()
			s.ID = got
			s.Active = true
			return s, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/setups/"+id.String()+"/activate", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_active":true`)
}

func TestActivateSetup_NotFound(t *testing.T) {
	h := newSetupRouter(&mockSetupServicer{
		activate: func(_ context.Context, _ uuid.UUID) (domain.StationSetup, error) {
			return domain.StationSetup{}, domain.ErrNotFound
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/setups/"+uuid.NewString()+"/activate", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
