package view

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/driveview/backend/internal/adapter"
	"github.com/driveview/backend/internal/mimetype"
)

// Theme is the presentation preference. It is independent of the state
// machine: it is derived once per request and toggled explicitly.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ResolveTheme picks the theme from, in order: an explicit ?theme= override,
// the theme cookie, and the client's color-scheme hint.
func ResolveTheme(query, cookie, hint string) Theme {
	switch Theme(query) {
	case ThemeLight, ThemeDark:
		return Theme(query)
	}
	switch Theme(cookie) {
	case ThemeLight, ThemeDark:
		return Theme(cookie)
	}
	if hint == "dark" {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme, for the toggle link.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// fileView decorates a record with its display category and download link.
type fileView struct {
	adapter.FileRecord
	Category    mimetype.Category
	DownloadURL string
}

// page is the template context.
type page struct {
	Kind    string
	Message string
	Files   []fileView
	Theme   Theme
	Toggle  Theme
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en" class="{{.Theme}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Google Drive File Manager</title>
</head>
<body class="theme-{{.Theme}}">
<header>
<h1>My Google Drive Files</h1>
<nav>
<a class="theme-toggle" href="/?theme={{.Toggle}}">{{if eq .Theme "dark"}}Switch to Light Mode{{else}}Switch to Dark Mode{{end}}</a>
{{if eq .Kind "ready"}}<a class="refresh" href="/auth/login">Refresh Access</a> <a class="logout" href="/auth/logout">Logout</a>{{end}}
</nav>
</header>
<main>
{{if eq .Kind "loading"}}
<p class="loading">Loading your Google Drive files...</p>
{{else if eq .Kind "unauthenticated"}}
<section class="login">
<p>Connect to your Google Drive to access and download your files.</p>
<a class="login-button" href="/auth/login">Connect to Google Drive</a>
</section>
{{else if eq .Kind "error"}}
<section class="error">
<p>Error loading files: {{.Message}}</p>
<p>Please try again or check your authentication status.</p>
</section>
{{else if .Files}}
<ul class="files">
{{range .Files}}
<li class="file {{.Category}}">
<span class="name">{{.Name}}</span>
{{if .DownloadURL}}<a class="download" href="{{.DownloadURL}}" target="_blank" rel="noreferrer">Download {{.Name}}</a>{{end}}
</li>
{{end}}
</ul>
{{else}}
<p class="empty">No files found in your Google Drive or you don&#39;t have access to any files.</p>
{{end}}
</main>
</body>
</html>
`))

// Renderer renders a State to the landing page HTML.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the page for the given state and theme.
func (r *Renderer) Render(s State, theme Theme) (string, error) {
	p := page{
		Kind:    s.Kind.String(),
		Message: s.Message,
		Theme:   theme,
		Toggle:  theme.Toggle(),
	}
	for _, f := range s.Files {
		fv := fileView{
			FileRecord: f,
			Category:   mimetype.Categorize(f.MIMEType),
		}
		// Folders have no direct download.
		if fv.Category != mimetype.CategoryFolder {
			fv.DownloadURL = fmt.Sprintf("https://drive.google.com/uc?export=download&id=%s", f.ID)
		}
		p.Files = append(p.Files, fv)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}
