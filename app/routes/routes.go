package routes

import (
	"net/http"

	"blogd/app/controllers"
	"blogd/app/middleware"

	"github.com/gorilla/mux"
)

// Deps bundles the constructed controllers and the auth guard. Everything is
// built once at startup and injected; no package-level singletons.
type Deps struct {
	Auth  *controllers.AuthController
	Posts *controllers.PostController
	AI    *controllers.AIController
	Guard *middleware.Auth
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(deps Deps) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	api := router.PathPrefix("/api").Subrouter()

	// Open endpoints
	api.HandleFunc("/signup", deps.Auth.Signup).Methods("POST")
	api.HandleFunc("/login", deps.Auth.Login).Methods("POST")

	// Everything below requires a valid bearer token
	authed := api.NewRoute().Subrouter()
	authed.Use(deps.Guard.RequireAuth)

	posts := authed.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", deps.Posts.Index).Methods("GET")
	posts.HandleFunc("", deps.Posts.Create).Methods("POST")
	posts.HandleFunc("/{id}", deps.Posts.Patch).Methods("PATCH")
	posts.HandleFunc("/{id}/publish", deps.Posts.Publish).Methods("POST")

	authed.HandleFunc("/ai/generate", deps.AI.Generate).Methods("POST")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
