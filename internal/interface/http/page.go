package http

import (
	"embed"
	"html/template"

	"github.com/yanqian/passage-analyzer/internal/domain/analyzer"
)

const (
	indexTemplate = "index.html.tmpl"
	pageTitle     = "Book Passage Analyzer (Groq Edition)"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))

type pageView struct {
	Title     string
	Passage   analyzer.PassageInfo
	WordCount int
	Analyzed  bool
	Analysis  *analyzer.Response
	Error     string
}
