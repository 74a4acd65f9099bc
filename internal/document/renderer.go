package document

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownTemplate rejects a document kind outside the fixed registry.
var ErrUnknownTemplate = errors.New("unknown document template")

// MissingFieldError reports a required scalar field absent from the field
// mapping. It names the first missing field in schema order.
type MissingFieldError struct {
	Name string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Name)
}

// Fields is the validated mapping from placeholder names to values. Scalar
// and list fields are kept apart so that the schema check is explicit
// rather than relying on dynamic lookup at substitution time.
type Fields struct {
	Scalars map[string]string
	Lists   map[string][]string
}

// ParseFields converts a decoded JSON object into Fields. Values must be
// strings or arrays of strings; anything else is rejected.
func ParseFields(raw map[string]any) (Fields, error) {
	fields := Fields{
		Scalars: make(map[string]string),
		Lists:   make(map[string][]string),
	}
	for name, value := range raw {
		switch v := value.(type) {
		case string:
			fields.Scalars[name] = v
		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return Fields{}, fmt.Errorf("field %q: list entries must be strings", name)
				}
				items = append(items, s)
			}
			fields.Lists[name] = items
		default:
			return Fields{}, fmt.Errorf("field %q: value must be a string or a list of strings", name)
		}
	}
	return fields, nil
}

// RenderedDocument is one filled blueprint.
type RenderedDocument struct {
	Kind      Kind
	Text      string
	CreatedAt time.Time
}

// Renderer fills document blueprints from validated field mappings.
type Renderer struct {
	templates map[Kind]Template
}

// NewRenderer creates a renderer over the fixed template registry.
func NewRenderer() *Renderer {
	return &Renderer{templates: templates}
}

// Render fills the blueprint for kind with the supplied fields. The field
// mapping is validated against the template schema before any substitution,
// so rendering is all-or-nothing: a missing required scalar fails with
// MissingFieldError and produces no partially filled text. Missing list
// fields render as empty sections. List entries are joined one per line in
// caller order, never sorted or deduplicated.
func (r *Renderer) Render(kind Kind, fields Fields, language string) (RenderedDocument, error) {
	tpl, ok := r.templates[kind]
	if !ok {
		return RenderedDocument{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, kind)
	}

	for _, name := range tpl.RequiredScalars {
		if _, present := fields.Scalars[name]; !present {
			return RenderedDocument{}, &MissingFieldError{Name: name}
		}
	}

	headers, ok := headersByLanguage[language]
	if !ok {
		headers = headersByLanguage["en"]
	}

	// All substitutions run in a single pass over the blueprint. A Replacer
	// never rescans replaced text, so placeholder-shaped tokens inside
	// caller-supplied values stay verbatim instead of being re-substituted.
	pairs := []string{
		"{header_facts}", headers.Facts,
		"{header_legal_basis}", headers.LegalBasis,
		"{header_prayers}", headers.Prayers,
		"{header_verification}", headers.Verification,
	}
	for name, value := range fields.Scalars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	for _, name := range tpl.ListFields {
		pairs = append(pairs, "{"+name+"}", strings.Join(fields.Lists[name], "\n"))
	}
	text := strings.NewReplacer(pairs...).Replace(tpl.Text)

	return RenderedDocument{
		Kind:      kind,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}, nil
}
