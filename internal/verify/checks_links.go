package verify

import (
	"context"
	"fmt"
	"path"

	"git.home.luguber.info/inful/feguide/internal/site"
)

// navLinks reports navigation items whose target has no page.
type navLinks struct{}

func (navLinks) Name() string { return RuleNavLinkExists }

func (navLinks) Check(_ context.Context, in *Input) ([]Issue, error) {
	var issues []Issue
	for _, item := range in.Site.Nav {
		if site.IsExternal(item.Link) || in.Content.Has(item.Link) {
			continue
		}
		issues = append(issues, Issue{
			Rule:     RuleNavLinkExists,
			Severity: SeverityError,
			Target:   item.Link,
			Message:  fmt.Sprintf("nav item %q points to a missing page", item.Text),
		})
	}
	return issues, nil
}

// sidebarLinks reports sidebar entries whose target has no page.
type sidebarLinks struct{}

func (sidebarLinks) Name() string { return RuleSidebarLinkExists }

func (sidebarLinks) Check(_ context.Context, in *Input) ([]Issue, error) {
	var issues []Issue
	for _, ref := range in.Site.Links() {
		if ref.Kind != site.LinkKindSidebar || site.IsExternal(ref.Link) || in.Content.Has(ref.Link) {
			continue
		}
		issues = append(issues, Issue{
			Rule:     RuleSidebarLinkExists,
			Severity: SeverityError,
			Route:    ref.Section,
			Target:   ref.Link,
			Message:  fmt.Sprintf("sidebar entry %q in group %q points to a missing page", ref.Text, ref.Group),
		})
	}
	return issues, nil
}

// duplicateSidebarLinks warns when one section lists a page twice.
type duplicateSidebarLinks struct{}

func (duplicateSidebarLinks) Name() string { return RuleDuplicateSidebarLink }

func (duplicateSidebarLinks) Check(_ context.Context, in *Input) ([]Issue, error) {
	var issues []Issue
	for _, sec := range in.Site.Sidebar {
		seen := map[string]string{}
		for _, g := range sec.Groups {
			for _, l := range g.Items {
				target := site.NormalizePath(l.Link)
				if first, dup := seen[target]; dup {
					issues = append(issues, Issue{
						Rule:     RuleDuplicateSidebarLink,
						Severity: SeverityWarning,
						Route:    sec.Prefix,
						Target:   target,
						Message:  fmt.Sprintf("%q repeats the target of %q", l.Text, first),
					})
					continue
				}
				seen[target] = l.Text
			}
		}
	}
	return issues, nil
}

// pageLinks warns about internal Markdown links to pages that do not exist.
// Targets with a file extension are assets and are not checked.
type pageLinks struct{}

func (pageLinks) Name() string { return RulePageLinkExists }

func (pageLinks) Check(ctx context.Context, in *Input) ([]Issue, error) {
	var issues []Issue
	for _, p := range in.Content.Pages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, target := range p.Links {
			if path.Ext(target) != "" || in.Content.Has(target) {
				continue
			}
			issues = append(issues, Issue{
				Rule:     RulePageLinkExists,
				Severity: SeverityWarning,
				Route:    p.Route,
				Target:   target,
				Message:  fmt.Sprintf("%s links to a missing page", p.File),
			})
		}
	}
	return issues, nil
}
