package config

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/site"
	"git.home.luguber.info/inful/feguide/internal/util/sets"
)

// siteFile is the YAML shape of a site definition.
type siteFile struct {
	Title       string                  `yaml:"title"`
	Description string                  `yaml:"description,omitempty"`
	Base        string                  `yaml:"base,omitempty"`
	Lang        string                  `yaml:"lang,omitempty"`
	LastUpdated bool                    `yaml:"last_updated,omitempty"`
	Locales     map[string]site.Locale  `yaml:"locales,omitempty"`
	Dictionary  map[string]string       `yaml:"dictionary,omitempty"`
	Nav         []site.NavItem          `yaml:"nav"`
	Sidebar     []siteSection           `yaml:"sidebar"`
	Search      site.SearchTranslations `yaml:"search,omitempty"`

	Footer              site.Footer       `yaml:"footer,omitempty"`
	Outline             *siteOutline      `yaml:"outline,omitempty"`
	DocFooter           site.DocFooter    `yaml:"doc_footer,omitempty"`
	LastUpdatedText     string            `yaml:"last_updated_text,omitempty"`
	ReturnToTopLabel    string            `yaml:"return_to_top_label,omitempty"`
	SidebarMenuLabel    string            `yaml:"sidebar_menu_label,omitempty"`
	DarkModeSwitchLabel string            `yaml:"dark_mode_switch_label,omitempty"`
	SocialLinks         []site.SocialLink `yaml:"social_links,omitempty"`
}

type siteSection struct {
	Prefix  string      `yaml:"prefix"`
	Heading string      `yaml:"heading,omitempty"`
	Groups  []siteGroup `yaml:"groups"`
}

type siteGroup struct {
	Text      string     `yaml:"text"`
	Collapsed bool       `yaml:"collapsed,omitempty"`
	Base      string     `yaml:"base,omitempty"` // Dictionary key item links are relative to
	Items     []siteItem `yaml:"items"`
}

type siteItem struct {
	Text string `yaml:"text"`
	Link string `yaml:"link"`
}

type siteOutline struct {
	Levels []int  `yaml:"levels,flow"`
	Label  string `yaml:"label,omitempty"`
}

// LoadSite reads a YAML site definition and expands its sidebar links
// through the dictionary.
func LoadSite(path string) (*site.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundError("site file not found").WithContext("path", path).Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read site file").
			WithContext("path", path).
			Build()
	}
	cfg, err := ParseSite(data)
	if err != nil {
		if ce, ok := errors.AsClassified(err); ok {
			return nil, ce.WithContext("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// ParseSite decodes a site definition.
func ParseSite(data []byte) (*site.Config, error) {
	var f siteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse site file").Fatal().Build()
	}
	return f.toSite()
}

func (f *siteFile) toSite() (*site.Config, error) {
	if strings.TrimSpace(f.Title) == "" {
		return nil, errors.ValidationError("site title is required").Build()
	}
	if err := validateLang("lang", f.Lang); err != nil {
		return nil, err
	}
	for name, loc := range f.Locales {
		if err := validateLang("locales."+name+".lang", loc.Lang); err != nil {
			return nil, err
		}
	}

	dict := site.LocaleDictionary{}
	for key, prefix := range f.Dictionary {
		if !strings.HasPrefix(prefix, "/") {
			return nil, errors.ValidationError("dictionary prefix must be an absolute path").
				WithContext("key", key).
				WithContext("prefix", prefix).
				Build()
		}
		dict[key] = prefix
	}

	cfg := &site.Config{
		Title:               f.Title,
		Description:         f.Description,
		Base:                f.Base,
		Lang:                f.Lang,
		LastUpdated:         f.LastUpdated,
		Locales:             f.Locales,
		Dictionary:          dict,
		Search:              f.Search,
		Footer:              f.Footer,
		Outline:             site.Outline{Levels: [2]int{2, 3}},
		DocFooter:           f.DocFooter,
		LastUpdatedText:     f.LastUpdatedText,
		ReturnToTopLabel:    f.ReturnToTopLabel,
		SidebarMenuLabel:    f.SidebarMenuLabel,
		DarkModeSwitchLabel: f.DarkModeSwitchLabel,
		SocialLinks:         f.SocialLinks,
	}
	if cfg.Base == "" {
		cfg.Base = "/"
	}
	if f.Outline != nil {
		cfg.Outline.Label = f.Outline.Label
		if len(f.Outline.Levels) > 0 {
			lv := f.Outline.Levels
			if len(lv) != 2 || lv[0] < 1 || lv[0] > lv[1] || lv[1] > 6 {
				return nil, errors.ValidationError("outline.levels must be [min, max] within 1..6").
					WithContext("levels", lv).
					Build()
			}
			cfg.Outline.Levels = [2]int{lv[0], lv[1]}
		}
	}

	for i, n := range f.Nav {
		if n.Text == "" || n.Link == "" {
			return nil, errors.ValidationError("nav item needs text and link").WithContext("index", i).Build()
		}
		cfg.Nav = append(cfg.Nav, n)
	}

	seen := sets.New[string]()
	for _, sec := range f.Sidebar {
		prefix := site.NormalizePrefix(sec.Prefix)
		if !seen.AddNew(prefix) {
			return nil, errors.ValidationError("duplicate sidebar prefix").WithContext("prefix", prefix).Build()
		}

		out := site.SidebarSection{Prefix: prefix, Heading: sec.Heading, Groups: make([]site.SidebarGroup, 0, len(sec.Groups))}
		for _, g := range sec.Groups {
			group, err := expandGroup(dict, prefix, g)
			if err != nil {
				return nil, err
			}
			out.Groups = append(out.Groups, group)
		}
		cfg.Sidebar = append(cfg.Sidebar, out)
	}
	return cfg, nil
}

func expandGroup(dict site.LocaleDictionary, prefix string, g siteGroup) (site.SidebarGroup, error) {
	group := site.SidebarGroup{Text: g.Text, Collapsed: g.Collapsed, Items: make([]site.SidebarLink, 0, len(g.Items))}
	for _, it := range g.Items {
		link := site.SidebarLink{Text: it.Text, Link: it.Link}
		if g.Base != "" {
			expanded, err := dict.Expand(g.Base, it.Link)
			if err != nil {
				return site.SidebarGroup{}, errors.WrapError(err, errors.CategoryValidation, "sidebar group uses unknown dictionary key").
					WithContext("prefix", prefix).
					WithContext("group", g.Text).
					WithContext("base", g.Base).
					Fatal().
					Build()
			}
			link.Link, link.Base = expanded, g.Base
		}
		group.Items = append(group.Items, link)
	}
	return group, nil
}

func validateLang(field, tag string) error {
	if tag == "" {
		return nil
	}
	if _, err := language.Parse(tag); err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "invalid language tag").
			WithContext("field", field).
			WithContext("lang", tag).
			Fatal().
			Build()
	}
	return nil
}

// WriteSite serializes cfg as a site definition. Groups whose links all come
// from one dictionary key are written relative to that key.
func WriteSite(path string, cfg *site.Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError("site file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}
	f := siteFile{
		Title:               cfg.Title,
		Description:         cfg.Description,
		Base:                cfg.Base,
		Lang:                cfg.Lang,
		LastUpdated:         cfg.LastUpdated,
		Locales:             cfg.Locales,
		Dictionary:          cfg.Dictionary,
		Nav:                 cfg.Nav,
		Search:              cfg.Search,
		Footer:              cfg.Footer,
		Outline:             &siteOutline{Levels: cfg.Outline.Levels[:], Label: cfg.Outline.Label},
		DocFooter:           cfg.DocFooter,
		LastUpdatedText:     cfg.LastUpdatedText,
		ReturnToTopLabel:    cfg.ReturnToTopLabel,
		SidebarMenuLabel:    cfg.SidebarMenuLabel,
		DarkModeSwitchLabel: cfg.DarkModeSwitchLabel,
		SocialLinks:         cfg.SocialLinks,
	}
	for _, sec := range cfg.Sidebar {
		out := siteSection{Prefix: sec.Prefix, Heading: sec.Heading}
		for _, g := range sec.Groups {
			out.Groups = append(out.Groups, collapseGroup(cfg.Dictionary, g))
		}
		f.Sidebar = append(f.Sidebar, out)
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal site file").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write site file").
			WithContext("path", path).
			Build()
	}
	return nil
}

func collapseGroup(dict site.LocaleDictionary, g site.SidebarGroup) siteGroup {
	out := siteGroup{Text: g.Text, Collapsed: g.Collapsed}
	base := ""
	if len(g.Items) > 0 {
		base = g.Items[0].Base
	}
	prefix, known := dict[base]
	for _, it := range g.Items {
		if it.Base != base || !strings.HasPrefix(it.Link, prefix) {
			known = false
		}
	}
	if base != "" && known {
		out.Base = base
	}
	for _, it := range g.Items {
		link := it.Link
		if out.Base != "" {
			link = strings.TrimPrefix(link, joinSlash(prefix))
		}
		out.Items = append(out.Items, siteItem{Text: it.Text, Link: link})
	}
	return out
}

func joinSlash(prefix string) string {
	if strings.HasSuffix(prefix, "/") {
		return prefix
	}
	return prefix + "/"
}
