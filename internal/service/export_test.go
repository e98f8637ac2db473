package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w1pns/wfd-logger/internal/contest"
	"github.com/w1pns/wfd-logger/internal/domain"
	"github.com/w1pns/wfd-logger/internal/service"
)

func exportableContact() domain.Contact {
	return domain.Contact{
		ID:               uuid.New(),
		Callsign:         "W1AW",
		Frequency:        14.250,
		Mode:             domain.ModeSSB,
		RSTSent:          "59",
		RSTReceived:      "59",
		ExchangeSent:     "1H EPA",
		ExchangeReceived: "2M GA",
		Exchange:         domain.Exchange{TxCount: 2, Class: domain.ClassMobile, Section: "GA"},
		ContactedAt:      time.Date(2026, 1, 24, 19, 5, 0, 0, time.UTC),
	}
}

func newExportService(contacts *mockContactRepo, setups *mockSetupRepo, objectives *mockObjectiveRepo) *service.ExportService {
	return service.NewExportService(contacts, setups, objectives, contest.DefaultRules())
}

func TestExportService_Cabrillo(t *testing.T) {
	active := validSetup()
	active.Active = true

	svc := newExportService(
		&mockContactRepo{list: func(_ context.Context) ([]domain.Contact, error) {
			return []domain.Contact{exportableContact()}, nil
		}},
		&mockSetupRepo{getActive: func(_ context.Context) (domain.StationSetup, error) {
			return active, nil
		}},
		&mockObjectiveRepo{},
	)

	file, err := svc.Export(context.Background(), "cabrillo")

	require.NoError(t, err)
	assert.Equal(t, "W1PNS.log", file.Filename)
	assert.True(t, strings.HasPrefix(file.Content, "START-OF-LOG: 3.0\n"))
	// One phone contact, one section: 1 point x 1 multiplier, no bonus.
	assert.Contains(t, file.Content, "CLAIMED-SCORE: 1\n")
	assert.Contains(t, file.Content, "QSO: ")
}

func TestExportService_Cabrillo_NoActiveSetup(t *testing.T) {
	svc := newExportService(
		&mockContactRepo{list: func(_ context.Context) ([]domain.Contact, error) { return nil, nil }},
		&mockSetupRepo{getActive: func(_ context.Context) (domain.StationSetup, error) {
			return domain.StationSetup{}, domain.ErrNotFound
		}},
		&mockObjectiveRepo{},
	)

	_, err := svc.Export(context.Background(), "cabrillo")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExportService_ADIF(t *testing.T) {
	svc := newExportService(
		&mockContactRepo{list: func(_ context.Context) ([]domain.Contact, error) {
			return []domain.Contact{exportableContact()}, nil
		}},
		&mockSetupRepo{},
		&mockObjectiveRepo{},
	)

	file, err := svc.Export(context.Background(), "adif")

	require.NoError(t, err)
	assert.Equal(t, "wfd_log.adi", file.Filename)
	assert.Contains(t, file.Content, "<EOR>")
}

func TestExportService_UnknownFormat(t *testing.T) {
	svc := newExportService(
		&mockContactRepo{list: func(_ context.Context) ([]domain.Contact, error) { return nil, nil }},
		&mockSetupRepo{},
		&mockObjectiveRepo{},
	)

	_, err := svc.Export(context.Background(), "csv")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExportService_SerializationError(t *testing.T) {
	bad := exportableContact()
	bad.Callsign = "" // unexportable: no callsign

	svc := newExportService(
		&mockContactRepo{list: func(_ context.Context) ([]domain.Contact, error) {
			return []domain.Contact{bad}, nil
		}},
		&mockSetupRepo{},
		&mockObjectiveRepo{},
	)

	_, err := svc.Export(context.Background(), "adif")

	assert.ErrorIs(t, err, domain.ErrSerialization)
}
