package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SilvaLimaAdvogados/legal-office-api/internal/audit"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/config"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/handlers"
	infraRepo "github.com/SilvaLimaAdvogados/legal-office-api/internal/infra/repository"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/middleware"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/realtime"
	ucAppointment "github.com/SilvaLimaAdvogados/legal-office-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rt *realtime.Publisher,
	cfg *config.Config,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	intakeUC := ucAppointment.NewIntake(appointmentRepo, auditDispatcher)
	promoteUC := ucAppointment.NewPromoteToClient(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	intakeHandler := handlers.NewIntakeHandler(intakeUC)

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(db, auditDispatcher, promoteUC)
	noteHandler := handlers.NewNoteHandler(db, auditDispatcher)
	financialHandler := handlers.NewFinancialHandler(db, auditDispatcher, rt)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (formulário do site)
		// ------------------------------
		api.POST("/public/appointments", intakeHandler.Create)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (painel)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.POST("/me/appointments/:id/client", appointmentHandler.PromoteToClient)

			// ------------------------------
			// NOTES
			// ------------------------------
			secured.GET("/me/notes", noteHandler.List)
			secured.GET("/me/notes/:id", noteHandler.Get)
			secured.POST("/me/notes", noteHandler.Create)
			secured.PATCH("/me/notes/:id", noteHandler.Update)
			secured.DELETE("/me/notes/:id", noteHandler.Delete)

			// ------------------------------
			// FINANCIAL
			// ------------------------------
			secured.GET("/me/financial-records", financialHandler.List)
			secured.POST("/me/financial-records", financialHandler.Create)
			secured.PATCH("/me/financial-records/:id", financialHandler.Update)
			secured.DELETE("/me/financial-records/:id", financialHandler.Delete)
			secured.GET("/me/financial-records/summary", financialHandler.Summary)
			secured.GET("/me/financial-records/export", financialHandler.Export)
			secured.GET("/me/financial-records/stream", financialHandler.Stream)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
