package appointment

import (
	"context"

	domain "github.com/SilvaLimaAdvogados/legal-office-api/internal/domain/appointment"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/httperr"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/models"
)

// PromoteToClient resolve o cliente por trás de uma consulta — o
// equivalente da rotina appointment_to_client do painel antigo.
type PromoteToClient struct {
	repo domain.Repository
}

func NewPromoteToClient(repo domain.Repository) *PromoteToClient {
	return &PromoteToClient{repo: repo}
}

func (uc *PromoteToClient) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Client, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	client, err := uc.repo.GetClientByID(ctx, ap.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	return client, nil
}
