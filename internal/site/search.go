package site

import (
	"slices"
	"strings"
)

// SearchTranslations holds the local-search UI strings per locale root
// ("root" for the default locale). Each tree nests map[string]any nodes with
// string leaves, e.g. {"modal": {"footer": {"closeText": "关闭"}}}.
type SearchTranslations map[string]map[string]any

// Lookup resolves a dotted key such as "modal.noResultsText".
func (s SearchTranslations) Lookup(locale, key string) (string, bool) {
	var node any = s[locale]
	for _, part := range strings.Split(key, ".") {
		m, ok := asMap(node)
		if !ok {
			return "", false
		}
		if node, ok = m[part]; !ok {
			return "", false
		}
	}
	str, ok := node.(string)
	return str, ok
}

// Flatten returns every leaf of locale's tree keyed by its dotted path.
func (s SearchTranslations) Flatten(locale string) map[string]string {
	out := map[string]string{}
	flattenInto(out, "", s[locale])
	return out
}

// Locales lists the locale roots with translations, sorted.
func (s SearchTranslations) Locales() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func flattenInto(out map[string]string, prefix string, node any) {
	m, ok := asMap(node)
	if !ok {
		if str, isStr := node.(string); isStr && prefix != "" {
			out[prefix] = str
		}
		return
	}
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		flattenInto(out, key, v)
	}
}

// asMap accepts both map[string]any and the map[any]any some YAML decoders
// produce for nested nodes.
func asMap(node any) (map[string]any, bool) {
	switch m := node.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				out[ks] = v
			}
		}
		return out, true
	default:
		return nil, false
	}
}
