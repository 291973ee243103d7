package verify

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"git.home.luguber.info/inful/feguide/internal/site"
	"git.home.luguber.info/inful/feguide/internal/util/sets"
)

// dictionary checks that expanded sidebar links start with their key's
// prefix, that no two keys share a prefix, and that no generated path is
// produced by two different keys (nested prefixes make that possible).
type dictionary struct{}

func (dictionary) Name() string { return "dictionary" }

func (dictionary) Check(_ context.Context, in *Input) ([]Issue, error) {
	dict := in.Site.Dictionary
	var issues []Issue

	generated := map[string]sets.Set[string]{}
	var order []string
	for _, ref := range in.Site.Links() {
		if ref.Base == "" {
			continue
		}
		prefix, ok := dict[ref.Base]
		if !ok {
			issues = append(issues, Issue{
				Rule:     RuleDictionaryPrefix,
				Severity: SeverityError,
				Route:    ref.Section,
				Target:   ref.Link,
				Message:  fmt.Sprintf("expanded from unknown dictionary key %q", ref.Base),
			})
			continue
		}
		if !strings.HasPrefix(site.NormalizePath(ref.Link), site.NormalizePrefix(prefix)) {
			issues = append(issues, Issue{
				Rule:     RuleDictionaryPrefix,
				Severity: SeverityError,
				Route:    ref.Section,
				Target:   ref.Link,
				Message:  fmt.Sprintf("does not start with %q, the prefix of key %q", prefix, ref.Base),
			})
			continue
		}
		path := site.NormalizePath(ref.Link)
		keys, seen := generated[path]
		if !seen {
			keys = sets.New[string]()
			generated[path] = keys
			order = append(order, path)
		}
		keys.Add(ref.Base)
	}
	for _, path := range order {
		keys := sets.Sorted(generated[path])
		if len(keys) < 2 {
			continue
		}
		issues = append(issues, Issue{
			Rule:     RuleDictionaryCollision,
			Severity: SeverityError,
			Target:   path,
			Message:  fmt.Sprintf("generated by keys %s", strings.Join(quoteAll(keys), ", ")),
		})
	}

	owner := map[string]string{}
	for _, key := range dict.Keys() {
		prefix := site.NormalizePrefix(dict[key])
		if first, dup := owner[prefix]; dup {
			issues = append(issues, Issue{
				Rule:     RuleDictionaryCollision,
				Severity: SeverityError,
				Target:   key,
				Message:  fmt.Sprintf("keys %q and %q both expand to %q", first, key, prefix),
			})
			continue
		}
		owner[prefix] = key
	}
	return issues, nil
}

func quoteAll(vals []string) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = fmt.Sprintf("%q", v)
	}
	return out
}

// partition checks that every page falls under exactly one sidebar section.
type partition struct{}

func (partition) Name() string { return RuleSidebarPartition }

func (partition) Check(_ context.Context, in *Input) ([]Issue, error) {
	exempt := sets.New[string]()
	for _, r := range in.PartitionExempt {
		exempt.Add(site.NormalizePath(r))
	}

	var issues []Issue
	for _, p := range in.Content.Pages() {
		matches := in.Site.MatchingSections(p.Route)
		switch {
		case len(matches) > 1:
			issues = append(issues, Issue{
				Rule:     RuleSidebarPartition,
				Severity: SeverityError,
				Route:    p.Route,
				Message:  fmt.Sprintf("matched by %d sidebar sections: %s", len(matches), strings.Join(matches, ", ")),
			})
		case len(matches) == 0 && !exempt.Has(p.Route):
			issues = append(issues, Issue{
				Rule:     RuleSidebarPartition,
				Severity: SeverityWarning,
				Route:    p.Route,
				Message:  "not covered by any sidebar section",
			})
		}
	}
	return issues, nil
}

// searchTranslations checks that every locale translates every required
// local-search string.
type searchTranslations struct{}

func (searchTranslations) Name() string { return RuleSearchTranslation }

func (searchTranslations) Check(_ context.Context, in *Input) ([]Issue, error) {
	locales := make([]string, 0, len(in.Site.Locales))
	for name := range in.Site.Locales {
		locales = append(locales, name)
	}
	if len(locales) == 0 {
		locales = in.Site.Search.Locales()
	}
	if len(locales) == 0 {
		locales = []string{"root"}
	}
	slices.Sort(locales)

	var issues []Issue
	for _, loc := range locales {
		for _, key := range in.RequiredSearchKeys {
			if text, ok := in.Site.Search.Lookup(loc, key); ok && strings.TrimSpace(text) != "" {
				continue
			}
			issues = append(issues, Issue{
				Rule:     RuleSearchTranslation,
				Severity: SeverityError,
				Route:    loc,
				Target:   key,
				Message:  fmt.Sprintf("locale %q has no text for %s", loc, key),
			})
		}
	}
	return issues, nil
}
