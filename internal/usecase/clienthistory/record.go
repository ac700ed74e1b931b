package clienthistory

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/ids"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ======================================================
// CLIENT HISTORY
// ======================================================

type AppointmentGetter interface {
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
}

type Repository interface {
	Create(ctx context.Context, h *models.ClientHistory) error
	ListForClient(ctx context.Context, clientUserID string, limit int) ([]models.ClientHistory, error)
}

type RecordInput struct {
	ClientUserID  string
	BarberID      string
	AppointmentID string

	Photos      models.StringList
	Preferences models.JSONMap
	Notes       string
}

type Record struct {
	appts AppointmentGetter
	repo  Repository
}

func NewRecord(appts AppointmentGetter, repo Repository) *Record {
	return &Record{
		appts: appts,
		repo:  repo,
	}
}

// Execute persists a visit record. History may only reference an
// appointment that has at least started, and must name the same client
// and barber as the appointment itself.
func (uc *Record) Execute(ctx context.Context, in RecordInput) (*models.ClientHistory, error) {

	ap, err := uc.appts.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if !domain.CanRecordHistory(ap) {
		return nil, httperr.ErrBusiness("history_not_allowed")
	}
	if ap.ClientUserID != in.ClientUserID || ap.BarberID != in.BarberID {
		return nil, httperr.ErrBusiness("history_mismatch")
	}

	h := &models.ClientHistory{
		ID:            ids.NewHistory(),
		ClientUserID:  in.ClientUserID,
		BarberID:      in.BarberID,
		AppointmentID: in.AppointmentID,
		Photos:        in.Photos,
		Preferences:   in.Preferences,
		Notes:         in.Notes,
	}

	if err := uc.repo.Create(ctx, h); err != nil {
		return nil, err
	}

	return h, nil
}

type ListForClient struct {
	repo Repository
}

func NewListForClient(repo Repository) *ListForClient {
	return &ListForClient{repo: repo}
}

func (uc *ListForClient) Execute(ctx context.Context, clientUserID string, limit int) ([]models.ClientHistory, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	return uc.repo.ListForClient(ctx, clientUserID, limit)
}
