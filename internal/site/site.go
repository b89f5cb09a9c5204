// Package site serves the portfolio page the acceptance suite runs against.
// The page is embedded so browser tests work without the network; /go/{slug}
// endpoints simulate the outbound-link redirect hop so link resolution is
// exercisable offline.
package site

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nsmirnova/portfolio-e2e/internal/obs"
)

//go:embed assets/index.html
var indexHTML []byte

// socialTargets maps the /go/{slug} hop to its final in-process profile page.
var socialTargets = map[string]string{
	"github":   "/profiles/github",
	"linkedin": "/profiles/linkedin",
	"telegram": "/profiles/telegram",
}

// NewHandler builds the fixture site router.
func NewHandler() http.Handler {
	r := chi.NewRouter()
	r.Get("/", servePage)
	r.Post("/api/contact", handleContact)
	r.Get("/go/{slug}", redirectSocial)
	r.Get("/profiles/{slug}", serveProfile)
	return obs.AccessLogMiddleware("site", r)
}

func servePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// ContactSubmission is the accepted shape of a contact-form post.
type ContactSubmission struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func handleContact(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	message := strings.TrimSpace(r.FormValue("message"))

	if err := validateContact(name, email, message); err != nil {
		obs.Pkg("site").Warn("contact submission rejected", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	submission := ContactSubmission{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Message: message,
	}
	obs.Pkg("site").Info("contact submission accepted", "id", submission.ID, "email", email)
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent", "id": submission.ID})
}

func validateContact(name, email, message string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("email %q is not valid", email)
	}
	if message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

func redirectSocial(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	target, ok := socialTargets[slug]
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func serveProfile(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if _, ok := socialTargets[slug]; !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html><html><head><title>%s profile</title></head><body><h1>%s</h1></body></html>", slug, slug)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
