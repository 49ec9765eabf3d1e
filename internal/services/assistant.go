package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"nando-backend/internal/catalog"
	"nando-backend/internal/hours"
	"nando-backend/internal/models"
)

// NavigateToPageFunction is the function-calling capability offered to the
// model. Pages mirror the site's routes.
const NavigateToPageFunction = "navigateToPage"

var navigablePages = []string{"home", "menu", "reservations", "contact"}

// AssistantService proxies chat requests to the Gemini API with a system
// instruction built from the restaurant facts and the full menu. Exactly one
// upstream call per invocation, no shared cache.
type AssistantService struct {
	client    *genai.Client
	modelName string
	menu      *catalog.MenuData
	rateChan  chan struct{} // Token bucket
}

func NewAssistantService(apiKey, modelName string, concurrentReqs int, menu *catalog.MenuData) (*AssistantService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &AssistantService{
		client:    client,
		modelName: modelName,
		menu:      menu,
		rateChan:  rateChan,
	}, nil
}

func (s *AssistantService) Close() {
	s.client.Close()
}

// acquireRate blocks until a rate slot is available
func (s *AssistantService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *AssistantService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Chat forwards the transcript plus the new prompt to the Gemini API and maps
// the reply to text plus any function-call instructions.
func (s *AssistantService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if err := s.acquireRate(ctx); err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer s.releaseRate()

	lang, ok := models.ParseLanguage(req.Language)
	if !ok {
		lang = models.LanguageES
	}

	// The model is cheap to construct; a fresh one per request keeps the
	// language-specific system instruction off shared state.
	model := s.client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(buildSystemInstruction(lang, s.menu))},
	}
	model.Tools = []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{{
			Name:        NavigateToPageFunction,
			Description: "Navigate the visitor to a page of the restaurant website when they express intent to see it.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"page": {
						Type:        genai.TypeString,
						Enum:        navigablePages,
						Description: "The page to open.",
					},
				},
				Required: []string{"page"},
			},
		}},
	}}

	chat := model.StartChat()
	chat.History = historyToContents(TrimLeadingModelTurn(req.History))

	resp, err := chat.SendMessage(ctx, genai.Text(req.Prompt))
	if err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("Gemini API error: %w", err)}
	}

	return mapResponse(resp), nil
}

// TrimLeadingModelTurn drops a synthetic greeting from the head of a
// transcript. The Gemini API rejects histories that do not start with a user
// turn, and the widget seeds its transcript with a model greeting.
func TrimLeadingModelTurn(history []models.HistoryTurn) []models.HistoryTurn {
	if len(history) > 0 && history[0].Role == models.RoleModel {
		return history[1:]
	}
	return history
}

func historyToContents(history []models.HistoryTurn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		parts := make([]genai.Part, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			parts = append(parts, genai.Text(p.Text))
		}
		if len(parts) == 0 {
			continue
		}
		contents = append(contents, &genai.Content{Role: turn.Role, Parts: parts})
	}
	return contents
}

func mapResponse(resp *genai.GenerateContentResponse) *models.ChatResponse {
	var text strings.Builder
	var calls []models.FunctionCall
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			switch p := part.(type) {
			case genai.Text:
				text.WriteString(string(p))
			case genai.FunctionCall:
				calls = append(calls, models.FunctionCall{Name: p.Name, Args: p.Args})
			}
		}
	}
	return &models.ChatResponse{Response: text.String(), FunctionCalls: calls}
}

func buildSystemInstruction(lang models.Language, menu *catalog.MenuData) string {
	var b strings.Builder

	info := catalog.Restaurant
	langName := "Spanish"
	if lang == models.LanguageEN {
		langName = "English"
	}

	b.WriteString(fmt.Sprintf("You are a helpful and friendly assistant for a Nicaraguan restaurant called '%s'. ", info.Name))
	b.WriteString("Your goal is to answer customer questions. Be concise and conversational.\n")
	b.WriteString(fmt.Sprintf("The user's current language preference is '%s', so you MUST respond in %s.\n\n", lang, langName))

	b.WriteString(fmt.Sprintf("- Name: %s\n", info.Name))
	b.WriteString(fmt.Sprintf("- Cuisine: %s\n", info.Cuisine))
	b.WriteString(fmt.Sprintf("- Location: %s\n", info.Address))
	b.WriteString(fmt.Sprintf("- Phone: %s\n", info.Phone))
	b.WriteString("- Hours:\n")
	for _, entry := range hours.Schedule {
		b.WriteString(fmt.Sprintf("  %s: %s\n", entry.Days.In(lang), entry.Display()))
	}

	b.WriteString("\nHere is the menu. Use this as your primary knowledge source for all menu questions. Prices are in Nicaraguan Córdoba (C$).\n")
	b.WriteString("--- MENU ---\n")
	b.WriteString(CompactMenu(menu, lang))
	b.WriteString("\n--- END MENU ---\n\n")

	b.WriteString("RULES:\n")
	b.WriteString("1. If asked about menu items, use the provided menu to answer.\n")
	b.WriteString("2. If asked for a reservation, politely direct the user to the website's reservation page. Do not try to take reservation details.\n")
	b.WriteString(fmt.Sprintf("3. If you don't know the answer, say you are not sure and suggest they call the restaurant at %s.\n", info.Phone))
	b.WriteString("4. Do not mention that you are an AI or that you were given a menu as context. Act as a knowledgeable assistant for the restaurant.\n")
	b.WriteString(fmt.Sprintf("5. When the user wants to see a page of the website, call %s with that page.\n", NavigateToPageFunction))

	return b.String()
}

// CompactMenu flattens the menu into a compact textual rendering in one
// language: section titles followed by "Name - C$price (note)" items. Keeps
// the prompt's token count down.
func CompactMenu(menu *catalog.MenuData, lang models.Language) string {
	sections := make([]string, 0, len(menu.MenuSections))
	for _, section := range menu.MenuSections {
		items := make([]string, 0, len(section.Items))
		for _, item := range section.Items {
			s := fmt.Sprintf("%s - C$%d", item.Name(lang), item.Price)
			if note := item.Notes(lang); note != "" {
				s += fmt.Sprintf(" (%s)", note)
			}
			items = append(items, s)
		}
		sections = append(sections, fmt.Sprintf("%s:\n%s", section.Title(lang), strings.Join(items, ". ")))
	}
	return strings.Join(sections, "\n\n")
}
