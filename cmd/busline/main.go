package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"busline/internal/api"
	"busline/internal/config"
	"busline/internal/store"
	"busline/internal/tui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatal(err)
	}

	// stdout belongs to the UI, so logs go to a file and only on demand
	loggerf := func(string, ...interface{}) {}
	if os.Getenv("BUSLINE_DEBUG") != "" {
		f, err := tea.LogToFile("busline.log", "busline")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		loggerf = log.Printf
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, st, loggerf)

	app := tea.NewProgram(tui.New(cfg, client, st, loggerf), tea.WithAltScreen())
	if _, err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
