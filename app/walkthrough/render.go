package walkthrough

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-pkgz/lcw/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/umputun/showcase/app/content"
	"github.com/umputun/showcase/app/enum"
)

// highlight classes of annotated spans
const (
	HighlightOn  = "border-2 border-red rounded-sm"
	HighlightOff = "border-2 border-transparent"
)

// DocumentSource provides the current walkthrough content.
type DocumentSource interface {
	Document() content.Document
}

// Rendered is the listing and the step notes rendered for one phase.
type Rendered struct {
	Title   string
	Listing template.HTML
	Steps   []template.HTML
}

// Renderer renders the annotated listing and the step notes with the spans of a phase highlighted.
// Results are cached per phase until Invalidate.
type Renderer struct {
	src   DocumentSource
	style string
	cache lcw.LoadingCache[Rendered]
	md    goldmark.Markdown
}

// NewRenderer makes a renderer for the source. style is the chroma style used for CSS.
func NewRenderer(src DocumentSource, style string) (*Renderer, error) {
	cache, err := lcw.NewLruCache(lcw.NewOpts[Rendered]().MaxKeys(len(enum.PhaseValues)))
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}
	return &Renderer{src: src, style: style, cache: cache, md: goldmark.New()}, nil
}

// Render returns the content rendered for the phase.
func (r *Renderer) Render(phase enum.Phase) (Rendered, error) {
	res, err := r.cache.Get(phase.String(), func() (Rendered, error) {
		return r.render(r.src.Document(), phase)
	})
	if err != nil {
		return Rendered{}, fmt.Errorf("render %s: %w", phase, err)
	}
	return res, nil
}

// Invalidate drops all cached renders, called when the content changes.
func (r *Renderer) Invalidate() {
	r.cache.Invalidate(func(string) bool { return true })
}

// Stat returns render cache statistics.
func (r *Renderer) Stat() lcw.CacheStat {
	return r.cache.Stat()
}

// Close closes the render cache.
func (r *Renderer) Close() error {
	return r.cache.Close()
}

// CSS writes the stylesheet for the listing token classes.
func (r *Renderer) CSS(w io.Writer) error {
	style := styles.Get(r.style)
	if style == nil {
		style = styles.Fallback
	}
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(w, style); err != nil {
		return fmt.Errorf("write css: %w", err)
	}
	return nil
}

func (r *Renderer) render(doc content.Document, phase enum.Phase) (Rendered, error) {
	listing, err := r.listing(doc, phase)
	if err != nil {
		return Rendered{}, err
	}
	res := Rendered{Title: doc.Title, Listing: listing, Steps: make([]template.HTML, 0, len(doc.Steps))}
	for i, step := range doc.Steps {
		h, err := r.step(step, phase)
		if err != nil {
			return Rendered{}, fmt.Errorf("step %d: %w", i+1, err)
		}
		res.Steps = append(res.Steps, h)
	}
	return res, nil
}

// listing tokenises the plain listing and wraps annotated ranges in highlight spans.
// Tokens crossing an annotation boundary are split, so the spans nest properly.
func (r *Renderer) listing(doc content.Document, phase enum.Phase) (template.HTML, error) {
	code, anns := doc.Annotated()

	lexer := lexers.Get(doc.Language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenise listing: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(`<pre class="code-block-inner chroma" data-lang="` + html.EscapeString(doc.Language) + `">`)
	pos, cur := 0, -1
	for _, tok := range iterator.Tokens() {
		val := tok.Value
		for val != "" {
			idx, n := segment(anns, pos, len(val))
			if idx != cur {
				if cur >= 0 {
					sb.WriteString("</span>")
				}
				if idx >= 0 {
					class := HighlightOff
					if anns[idx].Span == phase {
						class = HighlightOn
					}
					sb.WriteString(`<span class="` + class + `" data-span="` + anns[idx].Span.String() + `">`)
				}
				cur = idx
			}
			writeToken(&sb, tok.Type, val[:n])
			val, pos = val[n:], pos+n
		}
	}
	if cur >= 0 {
		sb.WriteString("</span>")
	}
	sb.WriteString("</pre>")
	return template.HTML(sb.String()), nil //nolint:gosec // token values are escaped
}

// segment returns the annotation covering pos (-1 for none) and the length of the run starting
// at pos that stays inside or outside of it, limited to maxLen.
func segment(anns []content.Annotation, pos, maxLen int) (idx, n int) {
	idx, end := -1, pos+maxLen
	for i, a := range anns {
		if pos >= a.Start && pos < a.End {
			idx = i
			end = min(end, a.End)
			continue
		}
		if a.Start > pos {
			end = min(end, a.Start)
		}
	}
	return idx, end - pos
}

func writeToken(sb *strings.Builder, tt chroma.TokenType, val string) {
	class := chroma.StandardTypes[tt]
	if class == "" {
		sb.WriteString(html.EscapeString(val))
		return
	}
	sb.WriteString(`<span class="` + class + `">` + html.EscapeString(val) + "</span>")
}

// step renders a step note. Code spans of a step bound to the phase get the highlight class.
func (r *Renderer) step(step content.Step, phase enum.Phase) (template.HTML, error) {
	src := []byte(step.Text)
	node := r.md.Parser().Parse(text.NewReader(src))
	if step.Span != "" {
		class := HighlightOff
		if step.Span == phase.String() {
			class = HighlightOn
		}
		err := ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if entering && n.Kind() == ast.KindCodeSpan {
				n.SetAttributeString("class", []byte(class))
			}
			return ast.WalkContinue, nil
		})
		if err != nil {
			return "", fmt.Errorf("walk markdown: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, node); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	out := strings.TrimSpace(buf.String())
	// single paragraph notes go into a list item as is
	if strings.Count(out, "<p>") == 1 && strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out), nil //nolint:gosec // goldmark escapes raw html by default
}
