package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (app *Application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(cors.AllowAll().Handler)

	mux.Get("/", app.handlers.HealthHandler)

	mux.Route("/rooms", func(r chi.Router) {
		r.Get("/", app.handlers.ListRoomsHandler)
		r.Post("/", app.handlers.CreateRoomHandler)

		// The {room} segment is a room code for join/rejoin and a room id
		// everywhere else; clients only ever know the code before joining.
		r.Route("/{room}", func(r chi.Router) {
			r.Post("/join", app.handlers.JoinRoomHandler)
			r.Post("/rejoin", app.handlers.RejoinRoomHandler)

			r.Get("/", app.handlers.GetRoomHandler)
			r.Post("/start", app.handlers.StartGameHandler)
			r.Post("/actions", app.handlers.RecordActionHandler)
			r.Get("/events", app.handlers.EventsHandler)

			r.Delete("/players/{playerID}", app.handlers.LeaveRoomHandler)
		})
	})

	return mux
}
