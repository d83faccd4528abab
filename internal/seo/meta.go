// Package seo holds the static per-page metadata table that feeds page
// heads, sitemap.xml, and canonical links. The table is built once at
// process start and never mutated.
package seo

// OpenGraph holds the Open Graph fields rendered into a page head.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
}

// Meta is the SEO metadata for a single page, keyed by route path.
type Meta struct {
	Path        string
	Title       string
	Description string
	// Canonical is the path the canonical link should point at; usually the
	// same as Path, it strips query-parameter variants like ?download=1.
	Canonical  string
	OG         OpenGraph
	Indexable  bool
	ChangeFreq string
	Priority   string
}

const ogImage = "/static/img/og-card.svg"

// pages lists every page in sitemap order.
var pages = []Meta{
	page("/", "PeakOps Automation | Your productivity engineers for modern teams",
		"PeakOps Automation builds custom workflow automations that save busy professionals and small teams hours every week.",
		"weekly", "1.0"),
	page("/about", "About | PeakOps Automation",
		"Meet the productivity engineers behind PeakOps Automation and learn how we approach workflow automation.",
		"monthly", "0.7"),
	page("/services", "Services | PeakOps Automation",
		"From a free workflow triage call to full AI automation solutions: the services PeakOps Automation offers.",
		"monthly", "0.9"),
	page("/pricing", "Pricing | PeakOps Automation",
		"Transparent, fixed pricing for workflow reports, automation builds, and AI automation solutions.",
		"monthly", "0.9"),
	page("/results", "Results | PeakOps Automation",
		"Real results from PeakOps automation projects: hours saved, errors eliminated, teams unblocked.",
		"monthly", "0.7"),
	page("/faq", "FAQ | PeakOps Automation",
		"Frequently asked questions about working with PeakOps Automation.",
		"monthly", "0.6"),
	page("/resources", "Free Resources | PeakOps Automation",
		"Free checklists and guides to help you find and ship your first workflow automations.",
		"weekly", "0.8"),
	page("/self-assessment", "Automation Self-Assessment | PeakOps Automation",
		"A quick self-assessment to gauge how much time your team could win back with automation.",
		"monthly", "0.6"),
	page("/contact", "Contact | PeakOps Automation",
		"Tell us about your workflows and book a free triage call with PeakOps Automation.",
		"monthly", "0.8"),
	page("/workflow-checklist", "Free Workflow Audit Checklist | PeakOps Automation",
		"Download the free Workflow Audit Checklist and find the automation opportunities hiding in your week.",
		"monthly", "0.8"),
	page("/top-10-automations", "Top 10 Automations for Small Teams | PeakOps Automation",
		"The ten automations that deliver the highest ROI for teams of 2-20 people, free to download.",
		"monthly", "0.8"),
	page("/automation-guide", "The Business Automation Guide | PeakOps Automation",
		"A practical guide to planning, building, and rolling out your first business automations.",
		"monthly", "0.8"),
}

var byPath = make(map[string]Meta, len(pages))

func init() {
	for _, p := range pages {
		byPath[p.Path] = p
	}
}

func page(path, title, description, changeFreq, priority string) Meta {
	return Meta{
		Path:        path,
		Title:       title,
		Description: description,
		Canonical:   path,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Image:       ogImage,
			Type:        "website",
		},
		Indexable:  true,
		ChangeFreq: changeFreq,
		Priority:   priority,
	}
}

// Pages returns the page metadata table in sitemap order.
func Pages() []Meta {
	out := make([]Meta, len(pages))
	copy(out, pages)
	return out
}

// Lookup returns the metadata for a route path.
func Lookup(path string) (Meta, bool) {
	m, ok := byPath[path]
	return m, ok
}
