package router

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"transbook/config"
	"transbook/internal/handlers/auth"
	"transbook/internal/handlers/booking"
	"transbook/internal/handlers/driver"
	"transbook/internal/handlers/user"
	"transbook/internal/handlers/vehicle"
	"transbook/transport/http/middleware"
)

const publicDir = "public"

type DomainHandlers struct {
	Auth    auth.Handler
	Booking booking.Handler
	Vehicle vehicle.Handler
	User    user.Handler
	Driver  driver.Handler
}

type Router struct {
	Config         *config.Config
	AppMiddleware  middleware.AppMiddleware
	DomainHandlers DomainHandlers
}

func New(cfg *config.Config, appMiddleware middleware.AppMiddleware, domainHandlers DomainHandlers) Router {
	return Router{
		Config:         cfg,
		AppMiddleware:  appMiddleware,
		DomainHandlers: domainHandlers,
	}
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
		AllowedMethods:   r.Config.App.CORS.AllowedMethods,
		AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
		AllowCredentials: r.Config.App.CORS.AllowCredentials,
		MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
	}))

	router.Use(r.AppMiddleware.RequestID)
	router.Use(r.AppMiddleware.Logger)
	router.Use(r.AppMiddleware.Recoverer)
	router.Use(r.AppMiddleware.Tracing)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Vehicle.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Driver.Router(routerGroup)
	})

	// The root always lands on the login page; the booking page is reached
	// after login and the admin console has its own alias.
	router.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/login.html", http.StatusFound)
	})

	router.Get("/admin", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(publicDir, "admin.html"))
	})

	router.Handle("/*", http.FileServer(http.Dir(publicDir)))
}
