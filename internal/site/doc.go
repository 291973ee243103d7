// Package site holds the declarative configuration of the study-guide site:
// top navigation, per-section sidebar trees, the locale dictionary used to
// build sidebar links, locale metadata and the local-search UI strings.
//
// A Config is assembled once (see Guide) and then only read. Lookups such as
// SectionFor and ActiveLink mirror how the site framework picks the sidebar
// and highlighted entry for a page.
package site
