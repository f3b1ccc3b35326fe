// Package scrape extracts structured articles and follow-up crawl links from
// HTML pages of known sites. Site modules (e.g. arxiv/) classify a page URL,
// run a page-type specific extraction routine and normalize the output into a
// Result that a crawl frontier and a storage stage can consume.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package scrape
