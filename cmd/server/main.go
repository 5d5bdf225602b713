package main

import (
	"database/sql"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lendaria/calculadoria/internal/config"
	"github.com/lendaria/calculadoria/internal/db"
	"github.com/lendaria/calculadoria/internal/migrations"
)

type server struct {
	sessions *sessionService
	db       *sql.DB
}

type baseViewData struct {
	ErrorMessage   string
	SuccessMessage string
}

type quotesViewData struct {
	baseViewData
	Query  string
	Quotes []quoteListItem
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	srv := &server{sessions: newSessionService(cfg.SessionSecret), db: database}

	r := chi.NewRouter()
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	r.Get("/", srv.handleHome)
	r.Get("/wizard", srv.handleWizard)
	r.Post("/wizard/service", srv.handleServiceSubmit)
	r.Post("/wizard/items/toggle", srv.handleItemToggle)
	r.Post("/wizard/items/price", srv.handleItemPrice)
	r.Post("/wizard/items/recurrence", srv.handleItemRecurrence)
	r.Post("/wizard/items/custom", srv.handleCustomItemAdd)
	r.Post("/wizard/items/custom/remove", srv.handleCustomItemRemove)
	r.Post("/wizard/items", srv.handleItemsNext)
	r.Post("/wizard/payment", srv.handlePaymentSubmit)
	r.Post("/wizard/theme", srv.handleThemeSubmit)
	r.Post("/wizard/personal", srv.handlePersonalSubmit)
	r.Post("/wizard/back", srv.handleGoBack)
	r.Post("/wizard/new", srv.handleNewQuote)
	r.Get("/wizard/export", srv.handleExport)
	r.Get("/quotes", srv.handleQuotesList)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/wizard", http.StatusSeeOther)
}

func (s *server) renderTemplate(w http.ResponseWriter, page string, data any) {
	templates, err := template.ParseFiles(
		"web/templates/layout.html",
		"web/templates/"+page,
	)
	if err != nil {
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
}
