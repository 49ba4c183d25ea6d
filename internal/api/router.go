package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	cancelBookingHandler "github.com/m04kA/qwiky-admin-proxy/internal/api/handlers/cancel_booking"
	countBookingsHandler "github.com/m04kA/qwiky-admin-proxy/internal/api/handlers/count_bookings"
	createStatusCheckHandler "github.com/m04kA/qwiky-admin-proxy/internal/api/handlers/create_status_check"
	getStatusChecksHandler "github.com/m04kA/qwiky-admin-proxy/internal/api/handlers/get_status_checks"
	getUserHandler "github.com/m04kA/qwiky-admin-proxy/internal/api/handlers/get_user"
	"github.com/m04kA/qwiky-admin-proxy/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/qwiky-admin-proxy/internal/api/handlers/list_bookings"
	"github.com/m04kA/qwiky-admin-proxy/internal/api/handlers/root"
	settleBookingHandler "github.com/m04kA/qwiky-admin-proxy/internal/api/handlers/settle_booking"
	"github.com/m04kA/qwiky-admin-proxy/internal/api/middleware"
	bookingModels "github.com/m04kA/qwiky-admin-proxy/internal/service/bookings/models"
	statusCheckModels "github.com/m04kA/qwiky-admin-proxy/internal/service/statuschecks/models"
)

type BookingService interface {
	List(ctx context.Context, req *bookingModels.ListBookingsRequest) (json.RawMessage, error)
	Count(ctx context.Context, token string) (*bookingModels.CountResponse, error)
	Cancel(ctx context.Context, token, bookingID string) (json.RawMessage, error)
	Settle(ctx context.Context, token, bookingID string) (json.RawMessage, error)
}

type UserService interface {
	GetByID(ctx context.Context, token, userID string) (json.RawMessage, error)
}

type StatusCheckService interface {
	Create(ctx context.Context, req *statusCheckModels.CreateStatusCheckRequest) (*statusCheckModels.StatusCheckResponse, error)
	List(ctx context.Context) ([]*statusCheckModels.StatusCheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Options параметры роутера
type Options struct {
	PathPrefix   string
	DefaultToken string

	// Metrics == nil отключает сбор метрик и endpoint MetricsPath
	Metrics        middleware.HTTPMetrics
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter собирает HTTP обработчик сервиса
func NewRouter(
	bookingSvc BookingService,
	userSvc UserService,
	statusCheckSvc StatusCheckService,
	log Logger,
	opts Options,
) http.Handler {
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	countBookings := countBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	settleBooking := settleBookingHandler.NewHandler(bookingSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	createStatusCheck := createStatusCheckHandler.NewHandler(statusCheckSvc, log)
	getStatusChecks := getStatusChecksHandler.NewHandler(statusCheckSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		if opts.MetricsHandler != nil {
			r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
		}
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix(opts.PathPrefix).Subrouter()

	api.HandleFunc("/", root.Handle).Methods(http.MethodGet)

	// --- Status checks ---
	api.HandleFunc("/status", createStatusCheck.Handle).Methods(http.MethodPost)
	api.HandleFunc("/status", getStatusChecks.Handle).Methods(http.MethodGet)

	// ============================================================
	// QWIKY PROXY ROUTES (Authorization: Bearer <token> опционален)
	// ============================================================

	qwiky := api.PathPrefix("/qwiky").Subrouter()
	qwiky.Use(middleware.BearerToken(opts.DefaultToken))

	qwiky.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	qwiky.HandleFunc("/bookings/count", countBookings.Handle).Methods(http.MethodGet)
	qwiky.HandleFunc("/user/{user_id}", getUser.Handle).Methods(http.MethodGet)
	qwiky.HandleFunc("/booking/{booking_id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	qwiky.HandleFunc("/booking/{booking_id}/settled", settleBooking.Handle).Methods(http.MethodPost)

	return middleware.CORS()(r)
}
