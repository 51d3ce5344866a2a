// ABOUTME: Server-rendered modal fragment for a claim checker
// ABOUTME: Result text is rendered as markdown and sanitized before it reaches the page

package views

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"

	"fact-chex/core/domain"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Renderer renders checker state into HTML fragments
type Renderer struct {
	templates *template.Template
	sanitizer *bluemonday.Policy
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}

	sanitizer := bluemonday.StrictPolicy()
	sanitizer.AllowElements("p", "br", "strong", "em", "code", "pre", "blockquote")
	sanitizer.AllowElements("ul", "ol", "li")
	sanitizer.AllowAttrs("href").OnElements("a")
	sanitizer.RequireParseableURLs(true)
	sanitizer.AddTargetBlankToFullyQualifiedLinks(true)
	sanitizer.RequireNoFollowOnLinks(true)

	return &Renderer{templates: tmpl, sanitizer: sanitizer}, nil
}

type modalData struct {
	ID        string
	Phase     domain.Phase
	Query     string
	ShowModal bool
	Loading   bool
	Result    *resultData
}

type resultData struct {
	Verdict      string
	VerdictClass string
	Score        string
	Reasoning    template.HTML
	Evidence     template.HTML
	Warnings     template.HTML
	IsError      bool
}

// RenderModal writes the modal fragment for a checker. A closed modal
// renders as an empty fragment.
func (r *Renderer) RenderModal(w io.Writer, id string, state domain.State) error {
	data := modalData{
		ID:        id,
		Phase:     state.Phase(),
		Query:     state.SearchQuery,
		ShowModal: state.ShowModal,
		Loading:   state.Phase() == domain.PhaseLoading,
	}
	if res := state.AnalysisResult; res != nil {
		data.Result = &resultData{
			Verdict:      res.Verdict,
			VerdictClass: strings.ToLower(strings.Join(strings.Fields(res.Verdict), "-")),
			Score:        res.Score,
			Reasoning:    r.markdown(res.Reasoning),
			Evidence:     r.markdown(res.Evidence),
			Warnings:     r.markdown(res.Warnings),
			IsError:      res.IsError(),
		}
	}

	// Render into a buffer so a template error never leaves half a fragment
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "modal", data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// markdown converts service text to sanitized HTML
func (r *Renderer) markdown(text string) template.HTML {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	out := blackfriday.Run([]byte(text), blackfriday.WithNoExtensions())
	return template.HTML(r.sanitizer.SanitizeBytes(out))
}
