package storefront

import (
	"fmt"
	"html/template"

	"github.com/smartfarming/pulsemart/internal/assets"
	"github.com/smartfarming/pulsemart/internal/catalog"
)

// Navigation targets. They are served elsewhere; the page only links to them.
const (
	LoginRoute = "/login"
	DemoRoute  = "/demo"
)

// Page is the render model of the listing page. Each region owns its children.
type Page struct {
	Title   string
	Header  Header
	Catalog CatalogRegion
	Footer  Footer
}

// Header is the title bar with its navigation actions.
type Header struct {
	Title   string
	Actions []NavAction
}

// NavAction is a link that asks the router to move to Href.
type NavAction struct {
	Label string
	Href  string
}

// CatalogRegion holds one card per catalog entry, in catalog order.
type CatalogRegion struct {
	Heading string
	Intro   template.HTML
	Cards   []Card
}

// Card is the clickable tile for a single entry.
type Card struct {
	ID    int
	Name  string
	Href  string
	Image Image
}

// Image is handed to the browser with its intrinsic size; Responsive scales
// it to the card width.
type Image struct {
	Src        string
	Alt        string
	Width      int
	Height     int
	Responsive bool
}

// Footer carries the copyright line.
type Footer struct {
	Year  int
	Owner string
}

// Text returns the copyright line shown in the footer.
func (f Footer) Text() string {
	return fmt.Sprintf("© %d %s. All rights reserved.", f.Year, f.Owner)
}

// headerActions returns the fixed navigation actions. A fresh slice is
// returned so a Page can never alias another's header.
func headerActions() []NavAction {
	return []NavAction{
		{Label: "Login", Href: LoginRoute},
		{Label: "Show Demo", Href: DemoRoute},
	}
}

func newCard(e catalog.Entry) Card {
	return Card{
		ID:   e.ID,
		Name: e.Name,
		Href: e.Route(),
		Image: Image{
			Src:        e.Image,
			Alt:        e.Name,
			Width:      assets.DefaultSize,
			Height:     assets.DefaultSize,
			Responsive: true,
		},
	}
}
