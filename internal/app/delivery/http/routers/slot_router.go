package routers

import (
	"docplanner-gateway/internal/app/delivery/http/controllers"
	"docplanner-gateway/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, middlewares *middlewares.Middlewares, slotController *controllers.SlotController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.BasicAuth)

		r.Get("/GetWeeklyAvailability/{date}", slotController.GetWeeklyAvailability)
		r.Get("/GetWeeklyAvailability/", slotController.GetWeeklyAvailability)
		r.Get("/GetWeeklySlots/{date}", slotController.GetWeeklySlots)
		r.Get("/GetWeeklySlots/", slotController.GetWeeklySlots)
		r.Post("/TakeSlot", slotController.TakeSlot)
	})
}
