package components

import (
	"shareit/internal/handler"
	"shareit/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
		api.NewItemRequestHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(u *api.UserHandler, i *api.ItemHandler, b *api.BookingHandler, r *api.ItemRequestHandler) handler.Handlers {
	return handler.Handlers{User: u, Item: i, Booking: b, ItemRequest: r}
}
