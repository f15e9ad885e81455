package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PlanHandlers is the handler surface the router wires up.
type PlanHandlers interface {
	GetDayPlan(w http.ResponseWriter, r *http.Request)
	GetPlacesNearby(w http.ResponseWriter, r *http.Request)
	GetCrowdPrediction(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	planHandler PlanHandlers
	router      *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	planHandler PlanHandlers,
	router *mux.Router) *Router {
	return &Router{
		planHandler: planHandler,
		router:      router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude}&lng={longitude}&date={YYYY-MM-DD}&radius={km}&max_stops={n}
	r.router.HandleFunc("/v1/plan/day", r.planHandler.GetDayPlan).Methods("GET")

	// expects ?lat={latitude}&lng={longitude}&radius={km}
	r.router.HandleFunc("/v1/places/nearby", r.planHandler.GetPlacesNearby).Methods("GET")

	// expects ?place={id or title}&date={YYYY-MM-DD}&hour={0-23}
	r.router.HandleFunc("/v1/crowd/predict", r.planHandler.GetCrowdPrediction).Methods("GET")

	r.router.HandleFunc("/ping", r.planHandler.Ping).Methods("GET")
}
