package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"compound-interest/domain"
	"compound-interest/report"
	"compound-interest/service"
	"compound-interest/templates"
)

const sessionCookieName = "projection_session"

// PageHandler serves the calculator page. Each browser keeps its own view
// state in a session referenced by cookie.
type PageHandler struct {
	sessions   *service.SessionService
	money      *report.CurrencyFormatter
	sessionTTL int
}

func NewPageHandler(sessions *service.SessionService, money *report.CurrencyFormatter, sessionTTLSeconds int) *PageHandler {
	if money == nil {
		money = report.DefaultCurrencyFormatter()
	}
	return &PageHandler{
		sessions:   sessions,
		money:      money,
		sessionTTL: sessionTTLSeconds,
	}
}

func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	var id string
	if c, err := r.Cookie(sessionCookieName); err == nil {
		id = c.Value
	}

	session, err := h.sessions.Open(ctx, id)
	if err != nil {
		log.Printf("Error opening session: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	if hasProjectionInput(q) {
		session, err = h.sessions.Calculate(ctx, session.ID, parseProjectionQuery(q))
		if err != nil && !errors.Is(err, service.ErrInvalidInput) {
			log.Printf("Warning: calculation failed for session %s: %v", session.ID, err)
		}
	}
	if v := q.Get("view"); v != "" {
		if updated, err := h.sessions.SwitchView(ctx, session.ID, domain.View(v)); err == nil {
			session = updated
		}
	}
	if y := q.Get("year"); y != "" {
		year, _ := strconv.Atoi(y)
		if updated, err := h.sessions.SelectYear(ctx, session.ID, year); err == nil {
			session = updated
		} else {
			log.Printf("Warning: failed to select year for session %s: %v", session.ID, err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Path:     "/",
		MaxAge:   h.sessionTTL,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	data := templates.PageData{Session: session, Money: h.money}
	if session.Ledger != nil {
		data.ExportURL = "/projection/export.xlsx?" + projectionQuery(session.Input).Encode()
	}
	templ.Handler(templates.Page(data)).ServeHTTP(w, r)
}
