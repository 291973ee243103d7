package render

import (
	"bytes"
	"encoding/json"

	"git.home.luguber.info/inful/feguide/internal/site"
)

type vitepressConfig struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Base        string                 `json:"base,omitempty"`
	Lang        string                 `json:"lang,omitempty"`
	LastUpdated bool                   `json:"lastUpdated,omitempty"`
	Locales     map[string]site.Locale `json:"locales,omitempty"`
	ThemeConfig vitepressTheme         `json:"themeConfig"`
}

type vitepressTheme struct {
	Nav                 []site.NavItem    `json:"nav"`
	Sidebar             orderedSidebar    `json:"sidebar"`
	Search              vitepressSearch   `json:"search"`
	Footer              *site.Footer      `json:"footer,omitempty"`
	Outline             site.Outline      `json:"outline"`
	DocFooter           *site.DocFooter   `json:"docFooter,omitempty"`
	LastUpdatedText     string            `json:"lastUpdatedText,omitempty"`
	ReturnToTopLabel    string            `json:"returnToTopLabel,omitempty"`
	SidebarMenuLabel    string            `json:"sidebarMenuLabel,omitempty"`
	DarkModeSwitchLabel string            `json:"darkModeSwitchLabel,omitempty"`
	SocialLinks         []site.SocialLink `json:"socialLinks,omitempty"`
}

type vitepressSearch struct {
	Provider string                 `json:"provider"`
	Options  vitepressSearchOptions `json:"options"`
}

type vitepressSearchOptions struct {
	Locales site.SearchTranslations `json:"locales,omitempty"`
}

// orderedSidebar encodes as a JSON object whose keys keep declaration
// order; VitePress picks the first matching key, so order matters.
type orderedSidebar site.Sidebar

func (s orderedSidebar) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sec := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sec.Prefix)
		if err != nil {
			return nil, err
		}
		groups := sec.Groups
		if groups == nil {
			groups = []site.SidebarGroup{}
		}
		val, err := json.Marshal(groups)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// VitePress renders cfg as the JSON object a .vitepress/config loader
// imports and passes to defineConfig.
func VitePress(cfg *site.Config) ([]byte, error) {
	nav := cfg.Nav
	if nav == nil {
		nav = []site.NavItem{}
	}
	out := vitepressConfig{
		Title:       cfg.Title,
		Description: cfg.Description,
		Base:        cfg.Base,
		Lang:        cfg.Lang,
		LastUpdated: cfg.LastUpdated,
		Locales:     cfg.Locales,
		ThemeConfig: vitepressTheme{
			Nav:     nav,
			Sidebar: orderedSidebar(cfg.Sidebar),
			Search: vitepressSearch{
				Provider: "local",
				Options:  vitepressSearchOptions{Locales: cfg.Search},
			},
			Outline:             cfg.Outline,
			LastUpdatedText:     cfg.LastUpdatedText,
			ReturnToTopLabel:    cfg.ReturnToTopLabel,
			SidebarMenuLabel:    cfg.SidebarMenuLabel,
			DarkModeSwitchLabel: cfg.DarkModeSwitchLabel,
			SocialLinks:         cfg.SocialLinks,
		},
	}
	if cfg.Footer != (site.Footer{}) {
		out.ThemeConfig.Footer = &cfg.Footer
	}
	if cfg.DocFooter != (site.DocFooter{}) {
		out.ThemeConfig.DocFooter = &cfg.DocFooter
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
