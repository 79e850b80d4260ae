package appointment

import (
	"context"

	"github.com/SilvaLimaAdvogados/legal-office-api/internal/models"
)

type Repository interface {
	// -------- Client --------
	// UpsertClientByEmail insere o cliente ou, havendo conflito de
	// email, sobrescreve nome e telefone. Preenche client.ID.
	UpsertClientByEmail(
		ctx context.Context,
		client *models.Client,
	) error

	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)
}
