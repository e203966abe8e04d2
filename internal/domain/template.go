package domain

// Template names a visual layout variant. Variants differ only in styling;
// the rendered content is identical across all of them.
type Template string

const (
	TemplateClassic Template = "classic"
	TemplateModern  Template = "modern"
	TemplateMinimal Template = "minimal"
)

// Templates is the closed set of layout variants, in selector order
var Templates = []Template{TemplateClassic, TemplateModern, TemplateMinimal}

// ResolveTemplate maps any tag onto the closed set. Unrecognized tags
// (e.g. from an old persisted record) resolve to classic, silently.
func ResolveTemplate(t Template) Template {
	switch t {
	case TemplateClassic, TemplateModern, TemplateMinimal:
		return t
	default:
		return TemplateClassic
	}
}

// NextTemplate cycles through the variants, for the form's template selector
func NextTemplate(t Template) Template {
	resolved := ResolveTemplate(t)
	for i, tmpl := range Templates {
		if tmpl == resolved {
			return Templates[(i+1)%len(Templates)]
		}
	}
	return TemplateClassic
}
