package storefront

// Site holds the page copy. Intro is markdown.
type Site struct {
	Title   string
	Heading string
	Intro   string
	Owner   string
}

// DefaultSite returns the storefront copy used when nothing is configured.
func DefaultSite() Site {
	return Site{
		Title:   "Smart Farming dApp",
		Heading: "Available Pulses",
		Intro:   "Connect directly with farmers and purchase fresh pulses with no intermediaries!",
		Owner:   "Smart Farming dApp",
	}
}

// withDefaults fills empty fields from DefaultSite.
func (s Site) withDefaults() Site {
	d := DefaultSite()
	if s.Title == "" {
		s.Title = d.Title
	}
	if s.Heading == "" {
		s.Heading = d.Heading
	}
	if s.Owner == "" {
		s.Owner = s.Title
	}
	return s
}
