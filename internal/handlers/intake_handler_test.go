package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/SilvaLimaAdvogados/legal-office-api/internal/domain/appointment"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/middleware"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/models"
	ucAppointment "github.com/SilvaLimaAdvogados/legal-office-api/internal/usecase/appointment"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type intakeRepoStub struct {
	clientWrites      int
	appointmentWrites int

	failUpsert bool
	failInsert bool
}

func (s *intakeRepoStub) UpsertClientByEmail(_ context.Context, c *models.Client) error {
	if s.failUpsert {
		return errors.New("connection refused")
	}
	s.clientWrites++
	c.ID = 1
	return nil
}

func (s *intakeRepoStub) GetClientByID(_ context.Context, _ uint) (*models.Client, error) {
	return nil, errors.New("record not found")
}

func (s *intakeRepoStub) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if s.failInsert {
		return errors.New("connection refused")
	}
	s.appointmentWrites++
	ap.ID = 1
	return nil
}

func (s *intakeRepoStub) GetAppointmentByID(_ context.Context, _ uint) (*models.Appointment, error) {
	return nil, errors.New("record not found")
}

var _ domain.Repository = (*intakeRepoStub)(nil)

// ======================================================
// HELPERS
// ======================================================

func newIntakeRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	uc := ucAppointment.NewIntakeAt(repo, nil, func() time.Time {
		return time.Date(2025, time.June, 4, 10, 0, 0, 0, time.UTC)
	})

	r := gin.New()
	r.Use(middleware.CORSMiddleware())
	r.POST("/api/public/appointments", NewIntakeHandler(uc).Create)
	return r
}

func postIntake(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/public/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ======================================================
// TESTS
// ======================================================

func TestIntakePreflight(t *testing.T) {
	r := newIntakeRouter(&intakeRepoStub{})

	req := httptest.NewRequest(http.MethodOptions, "/api/public/appointments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestIntakeValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"email":"a@b.com","subject":"Consulta"}`, "Nome é obrigatório"},
		{"missing email", `{"name":"Ana","subject":"Consulta"}`, "Email é obrigatório"},
		{"missing subject", `{"name":"Ana","email":"a@b.com"}`, "Assunto é obrigatório"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &intakeRepoStub{}
			r := newIntakeRouter(repo)

			w := postIntake(r, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp["error"])

			// validação reprovada: nenhuma escrita
			assert.Zero(t, repo.clientWrites)
			assert.Zero(t, repo.appointmentWrites)
		})
	}
}

func TestIntakeMalformedBody(t *testing.T) {
	repo := &intakeRepoStub{}
	r := newIntakeRouter(repo)

	w := postIntake(r, `{"name": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, repo.clientWrites)
}

func TestIntakeSuccess(t *testing.T) {
	repo := &intakeRepoStub{}
	r := newIntakeRouter(repo)

	w := postIntake(r, `{"name":"Ana","email":"ana@example.com","subject":"Divórcio consensual"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Consulta agendada com sucesso", resp["message"])

	assert.Equal(t, 1, repo.clientWrites)
	assert.Equal(t, 1, repo.appointmentWrites)
}

func TestIntakeClientUpsertFailure(t *testing.T) {
	repo := &intakeRepoStub{failUpsert: true}
	r := newIntakeRouter(repo)

	w := postIntake(r, `{"name":"Ana","email":"ana@example.com","subject":"Consulta"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Erro ao criar cliente", resp["error"])

	assert.Zero(t, repo.appointmentWrites)
}

func TestIntakeAppointmentInsertFailure(t *testing.T) {
	repo := &intakeRepoStub{failInsert: true}
	r := newIntakeRouter(repo)

	w := postIntake(r, `{"name":"Ana","email":"ana@example.com","subject":"Consulta"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Erro ao criar agendamento", resp["error"])

	// o upsert do cliente já aconteceu e não é desfeito
	assert.Equal(t, 1, repo.clientWrites)
}
