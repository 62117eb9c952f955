package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// nearbyHandler is the surface the router needs from the handler.
type nearbyHandler interface {
	NearbySearch(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	handler nearbyHandler
	router  *mux.Router
}

// NewRouter creates a router with the emulator's routes.
func NewRouter(handler nearbyHandler, router *mux.Router) *Router {
	return &Router{
		handler: handler,
		router:  router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?location={lat,lng}&radius={meters}&type={tokens}&key={credential}
	r.router.HandleFunc("/maps/api/place/nearbysearch/json", r.handler.NearbySearch).Methods("GET")

	r.router.HandleFunc("/ping", r.handler.Ping).Methods("GET")
}
