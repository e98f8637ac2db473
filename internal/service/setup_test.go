package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w1pns/wfd-logger/internal/domain"
	"github.com/w1pns/wfd-logger/internal/repo"
	"github.com/w1pns/wfd-logger/internal/service"
)

// ---- mock repo ---------------------------------------------------------------

// mockSetupRepo is a hand-written test double for repo.SetupRepo.
type mockSetupRepo struct {
	create    func(ctx context.Context, s domain.StationSetup) (domain.StationSetup, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.StationSetup, error)
	list      func(ctx context.Context) ([]domain.StationSetup, error)
	update    func(ctx context.Context, s domain.StationSetup) (domain.StationSetup, error)
	delete    func(ctx context.Context, id uuid.UUID) error
	activate  func(ctx context.Context, id uuid.UUID) (domain.StationSetup, error)
	getActive func(ctx context.Context) (domain.StationSetup, error)
}

func (m *mockSetupRepo) Create(ctx context.Context, s domain.StationSetup) (domain.StationSetup, error) {
	return m.create(ctx, s)
}
func (m *mockSetupRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.StationSetup, error) {
	return m.getByID(ctx, id)
}
func (m *mockSetupRepo) List(ctx context.Context) ([]domain.StationSetup, error) {
	return m.list(ctx)
}
func (m *mockSetupRepo) Update(ctx context.Context, s domain.StationSetup) (domain.StationSetup, error) {
	return m.update(ctx, s)
}
func (m *mockSetupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockSetupRepo) Activate(ctx context.Context, id uuid.UUID) (domain.StationSetup, error) {
	return m.activate(ctx, id)
}
func (m *mockSetupRepo) GetActive(ctx context.Context) (domain.StationSetup, error) {
	return m.getActive(ctx)
}

// compile-time check: mockSetupRepo must satisfy repo.SetupRepo.
var _ repo.SetupRepo = (*mockSetupRepo)(nil)

// ---- helpers -----------------------------------------------------------------

func validSetup() domain.StationSetup {
	return domain.StationSetup{
		Name:             "Home QTH",
		StationCallsign:  "W1PNS",
		OperatorName:     "Alex Moss",
		OperatorCallsign: "W1PNS",
		TxCount:          1,
		Class:            domain.ClassHome,
		Section:          "EPA",
	}
}

// ---- Create ------------------------------------------------------------------

func TestSetupService_Create_OK(t *testing.T) {
	var captured domain.StationSetup
	svc := service.NewSetupService(&mockSetupRepo{
		create: func(_ context.Context, s domain.StationSetup) (domain.StationSetup, error) {
			captured = s
			return s, nil
		},
	})

	input := validSetup()
	input.StationCallsign = " w1pns "
	input.Section = "epa"

	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "W1PNS", captured.StationCallsign)
	assert.Equal(t, "EPA", captured.Section)
	assert.NotNil(t, captured.AdditionalOperators)
}

func TestSetupService_Create_NameRequired(t *testing.T) {
	svc := service.NewSetupService(&mockSetupRepo{})

	input := validSetup()
	input.Name = "  "

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetupService_Create_BadClass(t *testing.T) {
	svc := service.NewSetupService(&mockSetupRepo{})

	input := validSetup()
	input.Class = "Q"

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetupService_Create_UnknownSection(t *testing.T) {
	svc := service.NewSetupService(&mockSetupRepo{})

	input := validSetup()
	input.Section = "ZZZ"

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetupService_Create_TxCountAtLeastOne(t *testing.T) {
	svc := service.NewSetupService(&mockSetupRepo{})

	input := validSetup()
	input.TxCount = 0

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Delete ------------------------------------------------------------------

func TestSetupService_Delete_OK(t *testing.T) {
	id := uuid.New()
	deleted := false
	svc := service.NewSetupService(&mockSetupRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.StationSetup, error) {
			s := validSetup()
			s.ID = id
			return s, nil
		},
		delete: func(_ context.Context, _ uuid.UUID) error {
			deleted = true
			return nil
		},
	})

	err := svc.Delete(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestSetupService_Delete_RefusesActiveSetup(t *testing.T) {
	svc := service.NewSetupService(&mockSetupRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.StationSetup, error) {
			s := validSetup()
			s.Active = true
			return s, nil
		},
	})

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetupService_Delete_NotFound(t *testing.T) {
	svc := service.NewSetupService(&mockSetupRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.StationSetup, error) {
			return domain.StationSetup{}, domain.ErrNotFound
		},
	})

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Activate / GetActive ----------------------------------------------------

func TestSetupService_Activate_OK(t *testing.T) {
	id := uuid.New()
	svc := service.NewSetupService(&mockSetupRepo{
		activate: func(_ context.Context, got uuid.UUID) (domain.StationSetup, error) {
			assert.Equal(t, id, got)
			s := validSetup()
			s.ID = got
			s.Active = true
			return s, nil
		},
	})

	got, err := svc.Activate(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, got.Active)
}

func TestSetupService_GetActive_None(t *testing.T) {
	svc := service.NewSetupService(&mockSetupRepo{
		getActive: func(_ context.Context) (domain.StationSetup, error) {
			return domain.StationSetup{}, domain.ErrNotFound
		},
	})

	_, err := svc.GetActive(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- List --------------------------------------------------------------------

func TestSetupService_List_ReturnsEmptySlice(t *testing.T) {
	svc := service.NewSetupService(&mockSetupRepo{
		list: func(_ context.Context) ([]domain.StationSetup, error) {
			return nil, nil
		},
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
