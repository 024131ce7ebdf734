package assets

import "net/http"

// Stylesheet is the CSS for the storefront page.
const Stylesheet = `*, *::before, *::after { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif; color: #111827; }
.page { display: flex; flex-direction: column; min-height: 100vh; }
.container { width: 100%; max-width: 1200px; margin: 0 auto; }

.site-header { background: #16a34a; color: #fff; padding: 1rem; }
.site-header .container { display: flex; justify-content: space-between; align-items: center; }
.site-header h1 { margin: 0; font-size: 1.5rem; font-weight: 700; }
.nav-action {
  display: inline-block; margin-left: .5rem; padding: .5rem 1rem;
  border: 1px solid #fff; border-radius: .375rem; color: #fff; text-decoration: none;
}
.nav-action:hover { background: #fff; color: #16a34a; }

.content { flex-grow: 1; padding: 2rem 1rem; }
.catalog h2 { margin: 0 0 2rem; font-size: 1.875rem; font-weight: 700; text-align: center; }
.catalog .intro { margin-bottom: 2rem; text-align: center; }
.catalog-grid { display: grid; grid-template-columns: 1fr; gap: 1.5rem; }
@media (min-width: 640px) { .catalog-grid { grid-template-columns: repeat(2, 1fr); } }
@media (min-width: 768px) { .catalog-grid { grid-template-columns: repeat(3, 1fr); } }

.card {
  display: block; background: #fff; border-radius: .5rem; overflow: hidden;
  box-shadow: 0 4px 6px -1px rgba(0,0,0,.1); color: inherit; text-decoration: none;
  transition: transform .15s ease-in-out;
}
.card:hover { transform: scale(1.05); }
.card img.responsive { display: block; width: 100%; height: auto; aspect-ratio: 1 / 1; }
.card-body { padding: 1rem; }
.card-name { margin: 0; font-size: 1.25rem; font-weight: 600; text-align: center; }

.site-footer { background: #e5e7eb; padding: 1rem 0; font-size: .875rem; text-align: center; }
.site-footer p { margin: 0; }
`

// StylesheetHandler serves Stylesheet.
func StylesheetHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(Stylesheet))
	})
}
