package web

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/yuin/goldmark"

	"shopwise/internal/history"
)

const sidebarLabelLen = 25

type recordView struct {
	Query  string
	Body   template.HTML
	Failed bool
}

type historyItem struct {
	Pos   int
	Label string
}

type pageData struct {
	Query    string
	Warning  string
	Result   *recordView
	Viewed   *recordView
	History  []historyItem
	Products []Product
}

var (
	pageTmpl = template.Must(template.New("page").Parse(pageTemplate))
	markdown = goldmark.New()
)

// basePage fills in the parts every render shares: sidebar, inspected
// record and showcase.
func (s *Server) basePage(sid string) *pageData {
	page := &pageData{Products: featuredProducts}
	for i, rec := range s.history.Recent(sid) {
		page.History = append(page.History, historyItem{Pos: i + 1, Label: sidebarLabel(rec.Query)})
	}
	if viewed, ok := s.history.Viewed(sid); ok {
		page.Viewed = newRecordView(viewed)
	}
	return page
}

func (s *Server) render(w http.ResponseWriter, status int, data *pageData) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		log.Printf("Error rendering template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func newRecordView(rec history.SearchRecord) *recordView {
	return &recordView{Query: rec.Query, Body: renderMarkdown(rec.Response), Failed: rec.Failed}
}

// renderMarkdown converts the advisor's answer to HTML. goldmark drops raw
// HTML from the source unless configured otherwise.
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(buf.String())
}

func sidebarLabel(query string) string {
	r := []rune(query)
	if len(r) > sidebarLabelLen {
		r = r[:sidebarLabelLen]
	}
	return string(r) + "..."
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>ShopWise AI 🛍️</title>
    <link rel="icon" href="data:image/svg+xml,<svg xmlns=%22http://www.w3.org/2000/svg%22 viewBox=%220 0 100 100%22><text y=%22.9em%22 font-size=%2290%22>🛒</text></svg>">
    <style>
        body { margin: 0; font-family: system-ui, sans-serif; display: flex; min-height: 100vh; color: #262730; }
        aside { width: 260px; background: #f0f2f6; padding: 1.5rem 1rem; }
        aside ol { padding-left: 1.2rem; }
        aside li { margin-bottom: .6rem; }
        main { flex: 1; padding: 2rem 3rem; max-width: 860px; }
        .warning { background: #fffce7; border-left: 4px solid #f9c74f; padding: .8rem 1rem; }
        .success { background: #e8f9ee; border-left: 4px solid #21c354; padding: .8rem 1rem; }
        .error { background: #ffecec; border-left: 4px solid #ff4b4b; padding: .8rem 1rem; }
        form.search input[type=text] { width: 100%; padding: .6rem; font-size: 1rem; box-sizing: border-box; }
        form.search button { margin-top: .8rem; padding: .5rem 1.2rem; }
        .products { display: flex; gap: 1rem; }
        .products div { flex: 1; }
        footer { margin-top: 2rem; color: #666; }
        .busy { display: none; }
        form.search.pending .busy { display: inline; }
    </style>
</head>
<body>
<aside>
    <h2>🛒 ShopWise AI</h2>
    <h3>🛍️ Past Searches</h3>
    {{if .History}}
    <ol>
        {{range .History}}
        <li><strong>{{.Pos}}.</strong> {{.Label}} <a href="/history/{{.Pos}}">View {{.Pos}}</a></li>
        {{end}}
    </ol>
    {{else}}
    <p>No searches yet.</p>
    {{end}}
</aside>
<main>
    {{with .Viewed}}
    <section class="viewed">
        <h2>🔍 Search Result</h2>
        <p><strong>Query:</strong> {{.Query}}</p>
        <p><strong>Gemini Response:</strong></p>
        <div class="{{if .Failed}}error{{else}}success{{end}}">{{.Body}}</div>
        <form method="post" action="/history/clear-view"><button type="submit">Close</button></form>
    </section>
    {{end}}

    <h1>🛍️ ShopWise AI - Your Smart Shopping Assistant</h1>
    <form class="search" method="post" action="/search" onsubmit="this.classList.add('pending')">
        <label for="query">🔎 What product are you looking for?</label>
        <input type="text" id="query" name="query" value="{{.Query}}" placeholder="e.g. best phone under 50k">
        <button type="submit">Search Product</button>
        <span class="busy">Searching...</span>
    </form>

    {{with .Warning}}<p class="warning">{{.}}</p>{{end}}

    {{with .Result}}
    <section class="result">
        <h3>✅ Gemini Response:</h3>
        <div class="{{if .Failed}}error{{else}}success{{end}}">{{.Body}}</div>
    </section>
    {{end}}

    <hr>
    <h3>🧺 Featured Products</h3>
    <div class="products">
        {{range .Products}}
        <div><p><strong>{{.Emoji}} {{.Name}}</strong></p><p>💰 {{.Price}}</p></div>
        {{end}}
    </div>

    <hr>
    <footer>
        <p>🛒 <strong>ShopWise AI</strong> &copy; 2025 | Created by Rahat Bano</p>
        <p>📧 Contact: <code>rahatbano142@gmail.com</code> | 🔗 <a href="https://github.com/RahatBano58">GitHub</a></p>
    </footer>
</main>
</body>
</html>
`
