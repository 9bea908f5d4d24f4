package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swissquality-storen/web/internal/repositories"
	"github.com/swissquality-storen/web/internal/site"
	"github.com/swissquality-storen/web/internal/submissions"
)

type memContactRepo struct {
	rows []repositories.ContactSubmission
	err  error
}

func (m *memContactRepo) Insert(_ context.Context, s repositories.ContactSubmission) error {
	if m.err != nil {
		return m.err
	}
	m.rows = append(m.rows, s)
	return nil
}

type memNewsletterRepo struct {
	emails map[string]bool
	err    error
}

func (m *memNewsletterRepo) Insert(_ context.Context, s repositories.NewsletterSignup) error {
	if m.err != nil {
		return m.err
	}
	if m.emails == nil {
		m.emails = map[string]bool{}
	}
	if m.emails[s.Email] {
		return repositories.ErrAlreadySubscribed
	}
	m.emails[s.Email] = true
	return nil
}

type noopMailer struct{ err error }

func (n *noopMailer) SendContactNotification(repositories.ContactSubmission) error { return n.err }
func (n *noopMailer) SendNewsletterWelcome(string) error                           { return n.err }

type apiFixture struct {
	router   http.Handler
	contacts *memContactRepo
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	contacts := &memContactRepo{}
	svc, err := submissions.NewService(submissions.ServiceDeps{
		Contacts:   contacts,
		Newsletter: &memNewsletterRepo{},
		Mailer:     &noopMailer{},
	})
	require.NoError(t, err)

	renderer, err := NewRenderer("../../templates", false)
	require.NoError(t, err)

	srv, err := NewServer(ServerDeps{
		Catalog:     testCatalog(t),
		Content:     testContentStore(t),
		Renderer:    renderer,
		Submissions: svc,
		Site:        site.Default,
		Company:     site.DefaultCompany,
	})
	require.NoError(t, err)
	return &apiFixture{router: srv.Routes(), contacts: contacts}
}

func postJSON(t *testing.T, h http.Handler, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), "body: %s", rec.Body.String())
	return rec, payload
}

func TestContactEndpoint(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, payload := postJSON(t, f.router, "/api/contact",
			`{"name":"Hans Muster","email":"hans@example.ch","message":"Bitte um Offerte."}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, payload["success"])
		assert.NotEmpty(t, payload["id"])
		require.Len(t, f.contacts.rows, 1)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, payload := postJSON(t, f.router, "/api/contact", `{"email":"hans@example.ch"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_failed", payload["error"])
		assert.Empty(t, f.contacts.rows)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, payload := postJSON(t, f.router, "/api/contact", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_request", payload["error"])
	})

	t.Run("honeypot gets synthetic success", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, payload := postJSON(t, f.router, "/api/contact",
			`{"name":"Bot","email":"bot@example.ch","message":"spam","website":"http://spam.example"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, payload["success"])
		assert.NotContains(t, payload, "id", "discarded submissions have no record id")
		assert.Empty(t, f.contacts.rows)
	})

	t.Run("persistence failure", func(t *testing.T) {
		f := newAPIFixture(t)
		f.contacts.err = assert.AnError

		rec, payload := postJSON(t, f.router, "/api/contact",
			`{"name":"Hans Muster","email":"hans@example.ch","message":"Bitte um Offerte."}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal_error", payload["error"])
	})
}

func TestNewsletterEndpoint(t *testing.T) {
	t.Run("first signup succeeds, second conflicts", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, payload := postJSON(t, f.router, "/api/newsletter", `{"email":"hans@example.ch"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, payload["success"])

		rec, payload = postJSON(t, f.router, "/api/newsletter", `{"email":"Hans@Example.CH"}`)
		assert.Equal(t, http.StatusConflict, rec.Code, "same address modulo case is a duplicate")
		assert.Equal(t, "already_subscribed", payload["error"])
		assert.Contains(t, payload["message"], "bereits")
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, payload := postJSON(t, f.router, "/api/newsletter", `{"email":"keine-adresse"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_failed", payload["error"])
	})
}
