package site

// NavItem is one entry of the top navigation bar.
type NavItem struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
	// ActiveMatch is the URL prefix that keeps this item highlighted on
	// every page below it. Empty means only Link itself highlights.
	ActiveMatch string `json:"activeMatch,omitempty" yaml:"active_match,omitempty"`
}

// SidebarLink is a leaf of a sidebar tree.
type SidebarLink struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
	// Base is the dictionary key Link was expanded from, if any.
	Base string `json:"-" yaml:"-"`
}

// SidebarGroup is a titled list of links inside a section.
type SidebarGroup struct {
	Text      string        `json:"text" yaml:"text"`
	Collapsed bool          `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Items     []SidebarLink `json:"items" yaml:"items"`
}

// SidebarSection is the sidebar tree shown for every page under Prefix.
type SidebarSection struct {
	Prefix  string         `json:"-" yaml:"prefix"`
	Heading string         `json:"heading,omitempty" yaml:"heading,omitempty"`
	Groups  []SidebarGroup `json:"groups" yaml:"groups"`
}

// Sidebar is the ordered set of sections, keyed by Prefix.
type Sidebar []SidebarSection

// Locale describes one locale root of the site.
type Locale struct {
	Label string `json:"label" yaml:"label"`
	Lang  string `json:"lang" yaml:"lang"`
}

type Footer struct {
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
	Copyright string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
}

// Outline controls the on-page table of contents.
type Outline struct {
	Levels [2]int `json:"level" yaml:"levels"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
}

type DocFooter struct {
	Prev string `json:"prev" yaml:"prev"`
	Next string `json:"next" yaml:"next"`
}

type SocialLink struct {
	Icon string `json:"icon" yaml:"icon"`
	Link string `json:"link" yaml:"link"`
}

// Config is the complete site description handed to the renderer.
type Config struct {
	Title       string
	Description string
	Base        string
	Lang        string
	LastUpdated bool

	Locales    map[string]Locale
	Dictionary LocaleDictionary

	Nav     []NavItem
	Sidebar Sidebar
	Search  SearchTranslations

	Footer              Footer
	Outline             Outline
	DocFooter           DocFooter
	LastUpdatedText     string
	ReturnToTopLabel    string
	SidebarMenuLabel    string
	DarkModeSwitchLabel string
	SocialLinks         []SocialLink
}

// Section returns the section registered under prefix.
func (s Sidebar) Section(prefix string) (SidebarSection, bool) {
	for _, sec := range s {
		if sec.Prefix == prefix {
			return sec, true
		}
	}
	return SidebarSection{}, false
}

// Prefixes lists section keys in declaration order.
func (s Sidebar) Prefixes() []string {
	out := make([]string, 0, len(s))
	for _, sec := range s {
		out = append(out, sec.Prefix)
	}
	return out
}
