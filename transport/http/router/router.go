package router

import (
	"petcare/internal/handlers/admin"
	"petcare/internal/handlers/assistant"
	"petcare/internal/handlers/booking"
	"petcare/internal/handlers/catalog"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking   booking.Handler
	Admin     admin.Handler
	Catalog   catalog.Handler
	Assistant assistant.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Assistant.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
