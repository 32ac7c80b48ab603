package main

import (
	"fmt"
	"os"

	"tavolo/cmd"
	"tavolo/internal/logger"
	"tavolo/internal/service"
	"tavolo/internal/storage"
	"tavolo/internal/ui"
	"tavolo/internal/workflow"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config, err := cmd.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(config.LogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store, err := storage.Open(config.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	users := service.NewUsers(store)
	restaurants := service.NewRestaurants(store)
	tables := service.NewTables(store)
	customers := service.NewCustomers(store)
	reservations := service.NewReservations(store)
	session := service.NewSession(store)

	app := ui.Services{
		Users:        users,
		Restaurants:  restaurants,
		Tables:       tables,
		Customers:    customers,
		Reservations: reservations,
		Session:      session,
		Auth:         workflow.NewAuth(users, session),
		Venues:       workflow.NewVenues(restaurants, tables, reservations),
		Bookings:     workflow.NewBookings(restaurants, tables, customers, reservations),
	}

	p := tea.NewProgram(ui.New(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
