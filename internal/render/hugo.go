package render

import (
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/feguide/internal/site"
)

// Hugo renders cfg as a hugo.yaml: nav becomes menu.main with weights by
// position, the sidebar and search strings travel as params for the theme.
func Hugo(cfg *site.Config) ([]byte, error) {
	params := map[string]any{
		"sidebar": cfg.Sidebar,
		"outline": map[string]any{"levels": cfg.Outline.Levels[:], "label": cfg.Outline.Label},
	}
	if cfg.Description != "" {
		params["description"] = cfg.Description
	}
	if len(cfg.Search) > 0 {
		params["search"] = cfg.Search
	}
	if cfg.Footer != (site.Footer{}) {
		params["footer"] = cfg.Footer
	}
	if cfg.DocFooter != (site.DocFooter{}) {
		params["docFooter"] = cfg.DocFooter
	}
	labels := map[string]string{
		"lastUpdatedText":     cfg.LastUpdatedText,
		"returnToTopLabel":    cfg.ReturnToTopLabel,
		"sidebarMenuLabel":    cfg.SidebarMenuLabel,
		"darkModeSwitchLabel": cfg.DarkModeSwitchLabel,
	}
	for k, v := range labels {
		if v != "" {
			params[k] = v
		}
	}
	if len(cfg.SocialLinks) > 0 {
		params["socialLinks"] = cfg.SocialLinks
	}

	mainMenu := make([]map[string]any, 0, len(cfg.Nav))
	for i, item := range cfg.Nav {
		entry := map[string]any{"name": item.Text, "url": item.Link, "weight": (i + 1) * 10}
		if item.ActiveMatch != "" {
			entry["params"] = map[string]any{"activeMatch": item.ActiveMatch}
		}
		mainMenu = append(mainMenu, entry)
	}

	root := map[string]any{
		"title":         cfg.Title,
		"baseURL":       cfg.Base,
		"enableGitInfo": cfg.LastUpdated,
		"menu":          map[string]any{"main": mainMenu},
		"params":        params,
	}
	if cfg.Lang != "" {
		root["languageCode"] = cfg.Lang
	}
	if len(cfg.Locales) > 0 {
		langs := map[string]any{}
		for name, loc := range cfg.Locales {
			langs[name] = map[string]any{"languageName": loc.Label, "languageCode": loc.Lang}
		}
		root["languages"] = langs
	}
	return yaml.Marshal(root)
}
