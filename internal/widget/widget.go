// Package widget implements the chat-widget session logic: the transcript,
// the synthetic greeting, the single in-flight request rule, and the
// navigate-on-function-call behavior. It talks to the assistant proxy over
// HTTP the same way the browser widget does.
package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"nando-backend/internal/catalog"
	"nando-backend/internal/models"
)

var (
	// ErrBusy is returned while a previous request is still in flight.
	// At most one outstanding request at a time; extra attempts are
	// rejected, not queued.
	ErrBusy = errors.New("widget: a request is already in flight")
	// ErrClosed is returned after the session has been torn down.
	ErrClosed = errors.New("widget: session is closed")
)

// Navigator performs in-app navigation when the assistant returns a
// navigateToPage instruction.
type Navigator interface {
	NavigateTo(page string)
}

// Session is a single conversation with the assistant. Not safe for use as a
// shared global; each open widget owns one session.
type Session struct {
	endpoint      string
	client        *http.Client
	lang          models.Language
	nav           Navigator
	navigateDelay time.Duration

	mu       sync.Mutex
	opened   bool
	closed   bool
	loading  bool
	gen      int // bumped on Close so stale replies are dropped
	messages []models.ChatMessage
}

// Config configures a widget session.
type Config struct {
	Endpoint string // assistant proxy URL
	Language models.Language
	Nav      Navigator
	// NavigateDelay is how long the reply stays on screen before the widget
	// navigates and closes. Zero means the production default.
	NavigateDelay time.Duration
	Client        *http.Client
}

const defaultNavigateDelay = 1500 * time.Millisecond

func NewSession(cfg Config) *Session {
	if cfg.NavigateDelay == 0 {
		cfg.NavigateDelay = defaultNavigateDelay
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{}
	}
	return &Session{
		endpoint:      cfg.Endpoint,
		client:        cfg.Client,
		lang:          cfg.Language,
		nav:           cfg.Nav,
		navigateDelay: cfg.NavigateDelay,
	}
}

// Open makes the widget visible. On the first open the session seeds the
// transcript with the localized greeting as a synthetic model turn.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.opened = true
	if len(s.messages) == 0 {
		s.messages = append(s.messages, models.ChatMessage{
			Role: models.RoleModel,
			Text: catalog.Content.Chatbot.Greeting.In(s.lang),
		})
	}
}

// Close tears the widget down. A reply still in flight is dropped when it
// arrives rather than appended to a dead transcript.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opened = false
	s.closed = true
	s.gen++
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Loading reports whether a request is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Suggestions returns the localized suggestion-chip prompts. Clicking a chip
// is just Send with the chip's text.
func Suggestions(lang models.Language) []string {
	c := catalog.Content.Chatbot
	return []string{
		c.SuggestionsMenu.In(lang),
		c.SuggestionsRes.In(lang),
		c.SuggestionsInfo.In(lang),
	}
}

// Send appends a user turn and asks the assistant for a reply. It returns
// ErrBusy while a previous request is in flight. A failed call appends the
// localized trouble-connecting message instead of a reply; the conversation
// survives so the user can retry.
func (s *Session) Send(ctx context.Context, text string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.loading {
		s.mu.Unlock()
		return ErrBusy
	}

	// History sent to the backend is the transcript before this user turn,
	// with the synthetic greeting stripped: the API requires a user-first
	// transcript.
	history := transcriptToHistory(s.messages)
	s.messages = append(s.messages, models.ChatMessage{Role: models.RoleUser, Text: text})
	s.loading = true
	gen := s.gen
	s.mu.Unlock()

	reply, err := s.call(ctx, models.ChatRequest{
		Prompt:   text,
		History:  history,
		Language: string(s.lang),
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if s.closed || gen != s.gen {
		// Stale: the widget was torn down while the request was in flight.
		return nil
	}

	if err != nil {
		s.messages = append(s.messages, models.ChatMessage{
			Role: models.RoleModel,
			Text: catalog.Content.Chatbot.ErrorMessage.In(s.lang),
		})
		return nil
	}

	s.messages = append(s.messages, models.ChatMessage{Role: models.RoleModel, Text: reply.Response})

	if page, ok := navigationTarget(reply.FunctionCalls); ok && s.nav != nil {
		// Give the user a moment to read the reply before leaving.
		nav := s.nav
		time.AfterFunc(s.navigateDelay, func() {
			nav.NavigateTo(page)
			s.Close()
		})
	}
	return nil
}

func (s *Session) call(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assistant proxy returned status %d", resp.StatusCode)
	}

	var reply models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// transcriptToHistory converts the widget transcript to the wire history
// shape, dropping a leading synthetic greeting.
func transcriptToHistory(messages []models.ChatMessage) []models.HistoryTurn {
	if len(messages) > 0 && messages[0].Role == models.RoleModel {
		messages = messages[1:]
	}
	history := make([]models.HistoryTurn, 0, len(messages))
	for _, m := range messages {
		history = append(history, models.HistoryTurn{
			Role:  m.Role,
			Parts: []models.HistoryPart{{Text: m.Text}},
		})
	}
	return history
}

// navigateToPageFunction matches the tool name the proxy declares upstream.
const navigateToPageFunction = "navigateToPage"

func navigationTarget(calls []models.FunctionCall) (string, bool) {
	for _, call := range calls {
		if call.Name != navigateToPageFunction {
			continue
		}
		if page, ok := call.Args["page"].(string); ok && page != "" {
			return page, true
		}
	}
	return "", false
}
