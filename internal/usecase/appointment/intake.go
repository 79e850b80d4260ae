package appointment

import (
	"context"
	"log"
	"time"

	"github.com/SilvaLimaAdvogados/legal-office-api/internal/audit"
	domain "github.com/SilvaLimaAdvogados/legal-office-api/internal/domain/appointment"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/httperr"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/models"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/timezone"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/validators"
)

// ======================================================
// USE CASE — INTAKE DO FORMULÁRIO PÚBLICO
// ======================================================

type Intake struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewIntake(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Intake {
	return &Intake{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

// NewIntakeAt injeta o relógio, para testes determinísticos.
func NewIntakeAt(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now func() time.Time,
) *Intake {
	return &Intake{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

// Execute assume payload já validado. Faz exatamente um upsert de
// cliente e no máximo um insert de agendamento; sem transação entre os
// dois passos — se o insert falhar, o cliente criado/atualizado fica.
func (uc *Intake) Execute(
	ctx context.Context,
	in validators.IntakePayload,
) (*models.Appointment, error) {

	in.Normalize()

	// --------------------------------------------------
	// 1️⃣ Cliente (upsert por email)
	// --------------------------------------------------
	client := &models.Client{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}

	if err := uc.repo.UpsertClientByEmail(ctx, client); err != nil {
		log.Printf("intake: erro ao criar/atualizar cliente: %v", err)
		return nil, httperr.ErrBusiness("client_upsert_failed")
	}

	// --------------------------------------------------
	// 2️⃣ Agendamento no próximo dia útil às 14:00
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:        client.ID,
		Subject:         in.Subject,
		Message:         in.Message,
		AppointmentDate: domain.NextBusinessDay(uc.now()),
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		log.Printf("intake: erro ao criar agendamento: %v", err)
		return nil, httperr.ErrBusiness("appointment_insert_failed")
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_requested",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
