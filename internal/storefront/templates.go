package storefront

// pageTemplate is the html/template for the listing page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
<div class="page">
  <header class="site-header">
    <div class="container">
      <h1>{{.Header.Title}}</h1>
      <nav>
        {{- range .Header.Actions}}
        <a class="nav-action" href="{{.Href}}">{{.Label}}</a>
        {{- end}}
      </nav>
    </div>
  </header>

  <main class="content container">
    <section class="catalog">
      <h2>{{.Catalog.Heading}}</h2>
      <div class="intro">{{.Catalog.Intro}}</div>
      <div class="catalog-grid">
        {{- range .Catalog.Cards}}
        <a class="card" href="{{.Href}}" data-id="{{.ID}}">
          <img src="{{.Image.Src}}" alt="{{.Image.Alt}}" width="{{.Image.Width}}" height="{{.Image.Height}}"{{if .Image.Responsive}} class="responsive"{{end}}>
          <div class="card-body">
            <h3 class="card-name">{{.Name}}</h3>
          </div>
        </a>
        {{- end}}
      </div>
    </section>
  </main>

  <footer class="site-footer">
    <div class="container">
      <p>{{.Footer.Text}}</p>
    </div>
  </footer>
</div>
</body>
</html>
`
