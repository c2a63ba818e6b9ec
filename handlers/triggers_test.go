package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"beacon/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- stubs ---

type stubService struct {
	createdErr error
	updatedErr error

	createdCalls []DocumentCreatedEvent
	updatedCalls []DocumentUpdatedEvent
}

func (s *stubService) HandleCreated(_ context.Context, collection, id string, record models.Notification) error {
	s.createdCalls = append(s.createdCalls, DocumentCreatedEvent{Collection: collection, DocumentID: id, Value: record})
	return s.createdErr
}

func (s *stubService) HandleUpdated(_ context.Context, collection, id string, before, after models.Notification) error {
	s.updatedCalls = append(s.updatedCalls, DocumentUpdatedEvent{Collection: collection, DocumentID: id, Before: before, After: after})
	return s.updatedErr
}

type stubGenerator struct {
	err  error
	runs int
}

func (g *stubGenerator) Run(context.Context) error {
	g.runs++
	return g.err
}

func newTestRouter(svc *stubService, gen *stubGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTriggerHandler(svc, gen)
	r.POST("/api/triggers/documents/created", h.DocumentCreatedHandler)
	r.POST("/api/triggers/documents/updated", h.DocumentUpdatedHandler)
	r.POST("/api/triggers/reminders/run", h.RunRemindersHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- tests ---

func TestDocumentCreatedHandlerPassesEventThrough(t *testing.T) {
	svc := &stubService{}
	r := newTestRouter(svc, &stubGenerator{})

	w := postJSON(t, r, "/api/triggers/documents/created", DocumentCreatedEvent{
		Collection: models.UserNotifications,
		DocumentID: "n-1",
		Value:      models.Notification{RecipientID: "U1", Title: "hello"},
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, svc.createdCalls, 1)
	assert.Equal(t, "n-1", svc.createdCalls[0].DocumentID)
	assert.Equal(t, "U1", svc.createdCalls[0].Value.RecipientID)
}

func TestDocumentCreatedHandlerSwallowsServiceFailure(t *testing.T) {
	svc := &stubService{createdErr: errors.New("push transport down")}
	r := newTestRouter(svc, &stubGenerator{})

	w := postJSON(t, r, "/api/triggers/documents/created", DocumentCreatedEvent{
		Collection: models.UserNotifications,
		DocumentID: "n-1",
	})

	// A non-2xx would make the trigger host redeliver and double-send.
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDocumentCreatedHandlerSwallowsMalformedPayload(t *testing.T) {
	svc := &stubService{}
	r := newTestRouter(svc, &stubGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/triggers/documents/created", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, svc.createdCalls)
}

func TestDocumentUpdatedHandlerPassesSnapshotsThrough(t *testing.T) {
	svc := &stubService{}
	r := newTestRouter(svc, &stubGenerator{})

	w := postJSON(t, r, "/api/triggers/documents/updated", DocumentUpdatedEvent{
		Collection: models.CreatorNotifications,
		DocumentID: "n-2",
		Before:     models.Notification{RecipientID: "C1", Status: models.StatusUnread},
		After:      models.Notification{RecipientID: "C1", Status: models.StatusRead},
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, svc.updatedCalls, 1)
	assert.Equal(t, models.StatusUnread, svc.updatedCalls[0].Before.Status)
	assert.Equal(t, models.StatusRead, svc.updatedCalls[0].After.Status)
}

func TestDocumentUpdatedHandlerSwallowsServiceFailure(t *testing.T) {
	svc := &stubService{updatedErr: errors.New("count query failed")}
	r := newTestRouter(svc, &stubGenerator{})

	w := postJSON(t, r, "/api/triggers/documents/updated", DocumentUpdatedEvent{
		Collection: models.UserNotifications,
		DocumentID: "n-1",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRunRemindersHandlerRunsGenerator(t *testing.T) {
	gen := &stubGenerator{}
	r := newTestRouter(&stubService{}, gen)

	w := postJSON(t, r, "/api/triggers/reminders/run", struct{}{})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, gen.runs)
}

func TestRunRemindersHandlerSwallowsGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("batch commit failed")}
	r := newTestRouter(&stubService{}, gen)

	w := postJSON(t, r, "/api/triggers/reminders/run", struct{}{})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, gen.runs)
}
