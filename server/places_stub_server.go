package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

// PlacesStubServer hosts the local places-provider emulator. It exists for
// development and end-to-end tests only; the product has no backend.
type PlacesStubServer struct {
	router    *Router
	muxRouter *mux.Router
	address   string
}

func NewPlacesStubServer(router *Router, muxRouter *mux.Router, address string) *PlacesStubServer {
	return &PlacesStubServer{
		router:    router,
		muxRouter: muxRouter,
		address:   address,
	}
}

// Start serves until an interrupt or termination signal, then shuts down
// gracefully.
func (s *PlacesStubServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.muxRouter,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	// Start the server in a goroutine so it doesn't block
	go func() {
		fmt.Println("Starting places stub server on " + s.address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	fmt.Println("\nShutting down the places stub server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Places stub server exiting")
}
