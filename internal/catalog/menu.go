package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"nando-backend/internal/models"
)

//go:embed menu.json
var menuJSON []byte

// MenuItem is a single dish with bilingual name and optional bilingual notes.
// Prices are in Nicaraguan Córdoba (C$).
type MenuItem struct {
	NameES  string `json:"name_es"`
	NameEN  string `json:"name_en"`
	Price   int    `json:"price"`
	NotesES string `json:"notes_es,omitempty"`
	NotesEN string `json:"notes_en,omitempty"`
}

// Name returns the item name in the given language.
func (m MenuItem) Name(lang models.Language) string {
	if lang == models.LanguageEN {
		return m.NameEN
	}
	return m.NameES
}

// Notes returns the item notes in the given language, empty if none.
func (m MenuItem) Notes(lang models.Language) string {
	if lang == models.LanguageEN {
		return m.NotesEN
	}
	return m.NotesES
}

// MenuSection groups items under a bilingual title.
type MenuSection struct {
	TitleES string     `json:"title_es"`
	TitleEN string     `json:"title_en"`
	Items   []MenuItem `json:"items"`
}

// Title returns the section title in the given language.
func (s MenuSection) Title(lang models.Language) string {
	if lang == models.LanguageEN {
		return s.TitleEN
	}
	return s.TitleES
}

// MenuData is the full restaurant menu.
type MenuData struct {
	MenuSections []MenuSection `json:"menu_sections"`
}

// LoadMenu parses and validates the bundled menu data. The menu is static
// reference data shared by the menu endpoint and the assistant's prompt
// builder, so a malformed menu is a startup error rather than a request error.
func LoadMenu() (*MenuData, error) {
	var menu MenuData
	if err := json.Unmarshal(menuJSON, &menu); err != nil {
		return nil, fmt.Errorf("failed to parse menu data: %w", err)
	}
	if err := menu.validate(); err != nil {
		return nil, fmt.Errorf("invalid menu data: %w", err)
	}
	return &menu, nil
}

func (m *MenuData) validate() error {
	if len(m.MenuSections) == 0 {
		return fmt.Errorf("menu has no sections")
	}
	for i, section := range m.MenuSections {
		if section.TitleES == "" || section.TitleEN == "" {
			return fmt.Errorf("section %d is missing a title", i)
		}
		if len(section.Items) == 0 {
			return fmt.Errorf("section %q has no items", section.TitleEN)
		}
		for j, item := range section.Items {
			if item.NameES == "" || item.NameEN == "" {
				return fmt.Errorf("section %q item %d is missing a name", section.TitleEN, j)
			}
			if item.Price <= 0 {
				return fmt.Errorf("section %q item %q has a non-positive price", section.TitleEN, item.NameEN)
			}
		}
	}
	return nil
}
