// Package content loads the annotated code listing and the step notes shown by the walkthrough.
// The document is YAML, embedded by default and optionally read from a file which can be
// watched for changes.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/umputun/showcase/app/enum"
)

//go:embed default.yml
var defaultDocument []byte

// markerRe matches annotated tokens in a listing, e.g. [[setter:set_count]].
var markerRe = regexp.MustCompile(`\[\[([a-z]+):([^\]\n]+)\]\]`)

// Document is the walkthrough content.
type Document struct {
	Title    string `yaml:"title"`
	Language string `yaml:"language"` // chroma lexer name
	Listing  string `yaml:"listing"`  // code with [[span:text]] markers
	Steps    []Step `yaml:"steps"`
}

// Step is a numbered note under the listing. Code spans of a step with a span are highlighted
// while the walkthrough is in that phase.
type Step struct {
	Span string `yaml:"span,omitempty"`
	Text string `yaml:"text"` // markdown
}

// Annotation is a highlighted byte range of the plain listing.
type Annotation struct {
	Span  enum.Phase
	Start int
	End   int
}

// Default returns the embedded document.
func Default() (Document, error) {
	return Parse(defaultDocument)
}

// Load reads the document from path, or the embedded one if path is empty.
func Load(path string) (Document, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is from CLI flag, controlled by admin
	if err != nil {
		return Document{}, fmt.Errorf("read content file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("content file %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := doc.validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Annotated returns the listing with markers stripped and the annotated ranges in order.
func (d Document) Annotated() (string, []Annotation) {
	var sb strings.Builder
	var res []Annotation
	last := 0
	for _, m := range markerRe.FindAllStringSubmatchIndex(d.Listing, -1) {
		sb.WriteString(d.Listing[last:m[0]])
		span, _ := enum.ParsePhase(d.Listing[m[2]:m[3]]) // validated on parse
		start := sb.Len()
		sb.WriteString(d.Listing[m[4]:m[5]])
		res = append(res, Annotation{Span: span, Start: start, End: sb.Len()})
		last = m[1]
	}
	sb.WriteString(d.Listing[last:])
	return sb.String(), res
}

func (d Document) validate() error {
	if strings.TrimSpace(d.Listing) == "" {
		return errors.New("listing is empty")
	}
	if len(d.Steps) == 0 {
		return errors.New("no steps defined")
	}

	var spans []string
	for _, m := range markerRe.FindAllStringSubmatch(d.Listing, -1) {
		spans = append(spans, m[1])
	}
	for _, s := range d.Steps {
		if s.Span != "" {
			spans = append(spans, s.Span)
		}
	}
	for _, s := range lo.Uniq(spans) {
		p, err := enum.ParsePhase(s)
		if err != nil || p == enum.PhaseIdle {
			return fmt.Errorf("unknown span %q", s)
		}
	}
	return nil
}
