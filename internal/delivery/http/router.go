package http

import (
	"net/http"

	"clinic-management-api/internal/delivery/http/handler"
	"clinic-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	patientHandler        *handler.PatientHandler
	medicalHistoryHandler *handler.MedicalHistoryHandler
	attendanceHandler     *handler.AttendanceHandler
	treatmentPlanHandler  *handler.TreatmentPlanHandler
	appointmentHandler    *handler.AppointmentHandler
	transactionHandler    *handler.TransactionHandler
	notificationHandler   *handler.NotificationHandler
	reportHandler         *handler.ReportHandler
	billingHandler        *handler.BillingHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	medicalHistoryHandler *handler.MedicalHistoryHandler,
	attendanceHandler *handler.AttendanceHandler,
	treatmentPlanHandler *handler.TreatmentPlanHandler,
	appointmentHandler *handler.AppointmentHandler,
	transactionHandler *handler.TransactionHandler,
	notificationHandler *handler.NotificationHandler,
	reportHandler *handler.ReportHandler,
	billingHandler *handler.BillingHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		patientHandler:        patientHandler,
		medicalHistoryHandler: medicalHistoryHandler,
		attendanceHandler:     attendanceHandler,
		treatmentPlanHandler:  treatmentPlanHandler,
		appointmentHandler:    appointmentHandler,
		transactionHandler:    transactionHandler,
		notificationHandler:   notificationHandler,
		reportHandler:         reportHandler,
		billingHandler:        billingHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Clinical routes (protected - admin or professional)
	clinical := api.PathPrefix("").Subrouter()
	clinical.Use(r.authMiddleware.Authenticate)
	clinical.Use(middleware.RequireClinical)

	// Patients
	clinical.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	clinical.HandleFunc("/patients/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	clinical.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	clinical.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Medical history (patient sub-resource)
	clinical.HandleFunc("/patients/{id}/history", r.medicalHistoryHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/patients/{id}/history", r.medicalHistoryHandler.List).Methods(http.MethodGet)
	clinical.HandleFunc("/patients/{id}/history/{historyId}", r.medicalHistoryHandler.Update).Methods(http.MethodPut)
	clinical.HandleFunc("/patients/{id}/history/{historyId}", r.medicalHistoryHandler.Delete).Methods(http.MethodDelete)

	// Attendances
	clinical.HandleFunc("/attendances", r.attendanceHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/attendances", r.attendanceHandler.List).Methods(http.MethodGet)
	clinical.HandleFunc("/attendances/{id}", r.attendanceHandler.GetByID).Methods(http.MethodGet)
	clinical.HandleFunc("/attendances/{id}", r.attendanceHandler.Update).Methods(http.MethodPut)
	clinical.HandleFunc("/attendances/{id}", r.attendanceHandler.Delete).Methods(http.MethodDelete)
	clinical.HandleFunc("/attendances/{id}/attachments/presign", r.attendanceHandler.PresignAttachment).Methods(http.MethodPost)

	// Treatment plans
	clinical.HandleFunc("/treatment-plans", r.treatmentPlanHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/treatment-plans", r.treatmentPlanHandler.List).Methods(http.MethodGet)
	clinical.HandleFunc("/treatment-plans/{id}", r.treatmentPlanHandler.GetByID).Methods(http.MethodGet)
	clinical.HandleFunc("/treatment-plans/{id}", r.treatmentPlanHandler.Update).Methods(http.MethodPut)
	clinical.HandleFunc("/treatment-plans/{id}", r.treatmentPlanHandler.Delete).Methods(http.MethodDelete)

	// Appointments
	clinical.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	clinical.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	clinical.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	clinical.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	clinical.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	// Transactions
	clinical.HandleFunc("/transactions", r.transactionHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/transactions", r.transactionHandler.List).Methods(http.MethodGet)
	clinical.HandleFunc("/transactions/{id}", r.transactionHandler.GetByID).Methods(http.MethodGet)
	clinical.HandleFunc("/transactions/{id}", r.transactionHandler.Update).Methods(http.MethodPut)
	clinical.HandleFunc("/transactions/{id}", r.transactionHandler.Delete).Methods(http.MethodDelete)

	// Notifications
	clinical.HandleFunc("/notifications", r.notificationHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/notifications", r.notificationHandler.List).Methods(http.MethodGet)
	clinical.HandleFunc("/notifications/{id}", r.notificationHandler.GetByID).Methods(http.MethodGet)
	clinical.HandleFunc("/notifications/{id}/read", r.notificationHandler.MarkRead).Methods(http.MethodPatch)
	clinical.HandleFunc("/notifications/{id}", r.notificationHandler.Update).Methods(http.MethodPut)
	clinical.HandleFunc("/notifications/{id}", r.notificationHandler.Delete).Methods(http.MethodDelete)

	// Reports
	clinical.HandleFunc("/reports/finance/overview", r.reportHandler.FinanceOverview).Methods(http.MethodGet)
	clinical.HandleFunc("/reports/attendances/patients", r.reportHandler.AttendanceStats).Methods(http.MethodGet)

	// Billing
	clinical.HandleFunc("/billing/checkout", r.billingHandler.Checkout).Methods(http.MethodPost)
	clinical.HandleFunc("/billing/subscription", r.billingHandler.Subscription).Methods(http.MethodGet)
	clinical.HandleFunc("/billing/invoices", r.billingHandler.Invoices).Methods(http.MethodGet)
	clinical.HandleFunc("/billing/cancel", r.billingHandler.Cancel).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
