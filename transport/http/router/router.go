package router

import (
	"hotelbook/internal/handlers/auth"
	"hotelbook/internal/handlers/availability"
	"hotelbook/internal/handlers/booking"
	"hotelbook/internal/handlers/channel"
	"hotelbook/internal/handlers/inventory"
	"hotelbook/internal/handlers/loyalty"
	"hotelbook/internal/handlers/rateplan"
	"hotelbook/internal/handlers/roomtype"
	"hotelbook/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	RoomType     roomtype.Handler
	Inventory    inventory.Handler
	RatePlan     rateplan.Handler
	Availability availability.Handler
	Booking      booking.Handler
	Loyalty      loyalty.Handler
	Channel      channel.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.RatePlan.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Loyalty.Router(routerGroup)
		r.DomainHandlers.Channel.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
