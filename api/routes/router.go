package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tidynest/tidynest-backend/api/controllers"
	"github.com/tidynest/tidynest-backend/api/middleware"
	authsvc "github.com/tidynest/tidynest-backend/internal/auth"
	bookingsvc "github.com/tidynest/tidynest-backend/internal/bookings"
	calendarsvc "github.com/tidynest/tidynest-backend/internal/calendar"
	jobsvc "github.com/tidynest/tidynest-backend/internal/cleaningjobs"
	housesvc "github.com/tidynest/tidynest-backend/internal/houses"
	"github.com/tidynest/tidynest-backend/internal/notifications"
	propertysvc "github.com/tidynest/tidynest-backend/internal/properties"
	usersvc "github.com/tidynest/tidynest-backend/internal/users"
	"github.com/tidynest/tidynest-backend/pkg/auth/session"
	"github.com/tidynest/tidynest-backend/pkg/config"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       controllers.Pinger
	Redis    controllers.Pinger
	Sessions session.AccessSessionChecker
	Registry *prometheus.Registry

	Auth          authsvc.Service
	Users         usersvc.Service
	Houses        housesvc.Service
	Properties    propertysvc.Service
	CleaningJobs  jobsvc.Service
	Bookings      bookingsvc.Service
	Calendar      calendarsvc.Service
	Notifications *notifications.Queue
}

// NewRouter assembles the HTTP surface.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(deps.Auth, logg))
		r.Post("/login", controllers.AuthLogin(deps.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(deps.Auth, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

		r.Get("/ping", controllers.PrivatePing())
		r.Get("/v1/me", controllers.AuthCheck(deps.Auth, logg))

		r.Route("/v1/users", func(r chi.Router) {
			r.Get("/", controllers.UsersList(deps.Users, logg))
			r.Post("/", controllers.UsersCreate(deps.Users, cfg, logg))
			r.Get("/{id}", controllers.UsersGet(deps.Users, logg))
			r.Patch("/{id}", controllers.UsersUpdate(deps.Users, logg))
			r.Delete("/{id}", controllers.UsersDelete(deps.Users, logg))
		})

		r.Route("/v1/houses", func(r chi.Router) {
			r.Get("/", controllers.HousesList(deps.Houses, logg))
			r.Post("/", controllers.HousesCreate(deps.Houses, logg))
			r.Get("/{id}", controllers.HousesGet(deps.Houses, logg))
			r.Patch("/{id}", controllers.HousesUpdate(deps.Houses, logg))
			r.Delete("/{id}", controllers.HousesDelete(deps.Houses, logg))
		})

		r.Route("/v1/properties", func(r chi.Router) {
			r.Get("/", controllers.PropertiesList(deps.Properties, logg))
			r.Post("/", controllers.PropertiesCreate(deps.Properties, logg))
			r.Get("/{id}", controllers.PropertiesGet(deps.Properties, logg))
			r.Patch("/{id}", controllers.PropertiesUpdate(deps.Properties, logg))
			r.Delete("/{id}", controllers.PropertiesDelete(deps.Properties, logg))
		})

		r.Route("/v1/cleaning-jobs", func(r chi.Router) {
			r.Get("/", controllers.CleaningJobsList(deps.CleaningJobs, logg))
			r.Post("/", controllers.CleaningJobsCreate(deps.CleaningJobs, logg))
			r.Get("/{id}", controllers.CleaningJobsGet(deps.CleaningJobs, logg))
			r.Patch("/{id}", controllers.CleaningJobsUpdate(deps.CleaningJobs, logg))
			r.Post("/{id}/status", controllers.CleaningJobsUpdateStatus(deps.CleaningJobs, logg))
			r.Post("/{id}/complete", controllers.CleaningJobsComplete(deps.CleaningJobs, logg))
			r.Delete("/{id}", controllers.CleaningJobsDelete(deps.CleaningJobs, logg))
		})

		r.Route("/v1/bookings", func(r chi.Router) {
			r.Get("/", controllers.BookingsList(deps.Bookings, logg))
			r.Post("/", controllers.BookingsCreate(deps.Bookings, logg))
			r.Get("/{id}", controllers.BookingsGet(deps.Bookings, logg))
			r.Patch("/{id}", controllers.BookingsUpdate(deps.Bookings, logg))
			r.Delete("/{id}", controllers.BookingsDelete(deps.Bookings, logg))
		})

		r.Route("/v1/calendar", func(r chi.Router) {
			r.Get("/view", controllers.CalendarView(deps.Calendar, logg))
			r.Put("/view", controllers.CalendarSetView(deps.Calendar, logg))
			r.Put("/selected-date", controllers.CalendarSetSelectedDate(deps.Calendar, logg))
			r.Route("/events", func(r chi.Router) {
				r.Get("/", controllers.CalendarEventsList(deps.Calendar, logg))
				r.Post("/", controllers.CalendarEventsCreate(deps.Calendar, logg))
				r.Get("/{id}", controllers.CalendarEventsGet(deps.Calendar, logg))
				r.Patch("/{id}", controllers.CalendarEventsUpdate(deps.Calendar, logg))
				r.Delete("/{id}", controllers.CalendarEventsDelete(deps.Calendar, logg))
			})
		})

		r.Route("/v1/notifications", func(r chi.Router) {
			r.Get("/", controllers.NotificationsList(deps.Notifications, logg))
			r.Post("/", controllers.NotificationsAdd(deps.Notifications, logg))
			r.Delete("/clear", controllers.NotificationsClear(deps.Notifications, logg))
			r.Delete("/{id}", controllers.NotificationsRemove(deps.Notifications, logg))
		})
	})

	return r
}
