package widget

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"nando-backend/internal/models"
)

type recordingNavigator struct {
	mu    sync.Mutex
	pages []string
}

func (n *recordingNavigator) NavigateTo(page string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pages = append(n.pages, page)
}

func (n *recordingNavigator) visited() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.pages))
	copy(out, n.pages)
	return out
}

// assistantStub serves canned ChatResponse payloads and records the requests
// it received.
type assistantStub struct {
	mu       sync.Mutex
	requests []models.ChatRequest
	reply    models.ChatResponse
	status   int
	block    chan struct{} // when set, the handler waits before replying
}

func (a *assistantStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a.mu.Lock()
		a.requests = append(a.requests, req)
		block := a.block
		status := a.status
		reply := a.reply
		a.mu.Unlock()

		if block != nil {
			<-block
		}
		if status != 0 && status != http.StatusOK {
			http.Error(w, "upstream failure", status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reply)
	}
}

func (a *assistantStub) lastRequest(t *testing.T) models.ChatRequest {
	t.Helper()
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.requests) == 0 {
		t.Fatal("Expected the stub to have received a request")
	}
	return a.requests[len(a.requests)-1]
}

func newTestSession(t *testing.T, stub *assistantStub, nav Navigator) *Session {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	return NewSession(Config{
		Endpoint:      srv.URL,
		Language:      models.LanguageEN,
		Nav:           nav,
		NavigateDelay: 50 * time.Millisecond,
	})
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Condition not met before timeout")
}

func TestOpenSeedsGreetingOnce(t *testing.T) {
	s := newTestSession(t, &assistantStub{}, nil)

	s.Open()
	s.Open()

	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("Expected exactly one greeting message, got %d", len(msgs))
	}
	if msgs[0].Role != models.RoleModel {
		t.Errorf("Expected greeting to be a model turn, got %q", msgs[0].Role)
	}
	if msgs[0].Text == "" {
		t.Error("Expected a non-empty greeting")
	}
}

func TestSendAppendsBothTurns(t *testing.T) {
	stub := &assistantStub{reply: models.ChatResponse{Response: "We open at noon."}}
	s := newTestSession(t, stub, nil)
	s.Open()

	if err := s.Send(context.Background(), "When do you open?"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("Expected greeting + user + reply, got %d messages", len(msgs))
	}
	if msgs[1].Role != models.RoleUser || msgs[1].Text != "When do you open?" {
		t.Errorf("Unexpected user turn: %+v", msgs[1])
	}
	if msgs[2].Role != models.RoleModel || msgs[2].Text != "We open at noon." {
		t.Errorf("Unexpected reply turn: %+v", msgs[2])
	}
}

func TestSendStripsGreetingFromHistory(t *testing.T) {
	stub := &assistantStub{reply: models.ChatResponse{Response: "ok"}}
	s := newTestSession(t, stub, nil)
	s.Open()

	if err := s.Send(context.Background(), "first question"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	req := stub.lastRequest(t)
	if len(req.History) != 0 {
		t.Errorf("Expected empty history on the first message, got %d turns", len(req.History))
	}
	if req.Prompt != "first question" {
		t.Errorf("Expected prompt %q, got %q", "first question", req.Prompt)
	}
	if req.Language != "en" {
		t.Errorf("Expected language en, got %q", req.Language)
	}

	if err := s.Send(context.Background(), "second question"); err != nil {
		t.Fatalf("Second send failed: %v", err)
	}
	req = stub.lastRequest(t)
	if len(req.History) != 2 {
		t.Fatalf("Expected 2 history turns (user, model), got %d", len(req.History))
	}
	if req.History[0].Role != models.RoleUser {
		t.Errorf("Expected history to start with a user turn, got %q", req.History[0].Role)
	}
	if req.History[0].Parts[0].Text != "first question" {
		t.Errorf("Unexpected first history turn: %+v", req.History[0])
	}
}

func TestSendRejectsConcurrentRequests(t *testing.T) {
	block := make(chan struct{})
	stub := &assistantStub{reply: models.ChatResponse{Response: "ok"}, block: block}
	s := newTestSession(t, stub, nil)
	s.Open()

	done := make(chan error, 1)
	go func() { done <- s.Send(context.Background(), "slow question") }()

	waitFor(t, time.Second, s.Loading)

	if err := s.Send(context.Background(), "impatient question"); err != ErrBusy {
		t.Errorf("Expected ErrBusy while a request is in flight, got %v", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("First send failed: %v", err)
	}
	if s.Loading() {
		t.Error("Expected loading to clear after the reply arrived")
	}
}

func TestSendTurnsFailureIntoErrorMessage(t *testing.T) {
	stub := &assistantStub{status: http.StatusInternalServerError}
	s := newTestSession(t, stub, nil)
	s.Open()

	if err := s.Send(context.Background(), "hello?"); err != nil {
		t.Fatalf("Send should swallow upstream failures, got %v", err)
	}

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("Expected greeting + user + error turn, got %d messages", len(msgs))
	}
	last := msgs[len(msgs)-1]
	if last.Role != models.RoleModel {
		t.Errorf("Expected the error turn to be a model turn, got %q", last.Role)
	}
	if last.Text != "Sorry, I'm having trouble connecting right now. Please try again later." {
		t.Errorf("Unexpected error message: %q", last.Text)
	}
}

func TestNavigationCallNavigatesAndCloses(t *testing.T) {
	nav := &recordingNavigator{}
	stub := &assistantStub{reply: models.ChatResponse{
		Response: "Taking you to the menu.",
		FunctionCalls: []models.FunctionCall{
			{Name: "navigateToPage", Args: map[string]any{"page": "menu"}},
		},
	}}
	s := newTestSession(t, stub, nav)
	s.Open()

	if err := s.Send(context.Background(), "show me the menu"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	// The reply stays on screen during the delay.
	if got := nav.visited(); len(got) != 0 {
		t.Fatalf("Expected navigation to wait for the delay, already visited %v", got)
	}

	waitFor(t, time.Second, func() bool { return len(nav.visited()) == 1 })
	if got := nav.visited(); got[0] != "menu" {
		t.Errorf("Expected navigation to menu, got %v", got)
	}

	waitFor(t, time.Second, func() bool {
		return s.Send(context.Background(), "still there?") == ErrClosed
	})
}

func TestNavigationIgnoresUnknownCalls(t *testing.T) {
	nav := &recordingNavigator{}
	stub := &assistantStub{reply: models.ChatResponse{
		Response: "Done.",
		FunctionCalls: []models.FunctionCall{
			{Name: "someOtherTool", Args: map[string]any{"page": "menu"}},
			{Name: "navigateToPage", Args: map[string]any{"page": 42}},
		},
	}}
	s := newTestSession(t, stub, nav)
	s.Open()

	if err := s.Send(context.Background(), "do something"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	time.Sleep(150 * time.Millisecond)
	if got := nav.visited(); len(got) != 0 {
		t.Errorf("Expected no navigation for unrecognized calls, got %v", got)
	}
}

func TestCloseDropsInFlightReply(t *testing.T) {
	block := make(chan struct{})
	stub := &assistantStub{reply: models.ChatResponse{Response: "too late"}, block: block}
	s := newTestSession(t, stub, nil)
	s.Open()

	done := make(chan error, 1)
	go func() { done <- s.Send(context.Background(), "question") }()
	waitFor(t, time.Second, s.Loading)

	s.Close()
	close(block)
	if err := <-done; err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	for _, m := range s.Messages() {
		if m.Text == "too late" {
			t.Error("Expected the stale reply to be dropped after Close")
		}
	}

	if err := s.Send(context.Background(), "anyone?"); err != ErrClosed {
		t.Errorf("Expected ErrClosed after Close, got %v", err)
	}
}

func TestSuggestionsLocalized(t *testing.T) {
	en := Suggestions(models.LanguageEN)
	es := Suggestions(models.LanguageES)

	if len(en) != 3 || len(es) != 3 {
		t.Fatalf("Expected 3 suggestion chips, got %d/%d", len(en), len(es))
	}
	if en[0] != "View Menu" {
		t.Errorf("Unexpected English chip: %q", en[0])
	}
	if es[0] != "Ver Menú" {
		t.Errorf("Unexpected Spanish chip: %q", es[0])
	}
}
