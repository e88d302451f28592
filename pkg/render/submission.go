package render

import "github.com/goliatone/go-regform/pkg/model"

// HiddenField represents a hidden form input emitted by the fallback form.
type HiddenField struct {
	Name  string
	Value string
}

// PayloadHiddenFields converts a payload into hidden inputs in wire order,
// ending with the subject line when it is non-empty.
func PayloadHiddenFields(p model.Payload, subject string) []HiddenField {
	pairs := p.Fields(subject)
	out := make([]HiddenField, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, HiddenField{Name: string(pair.Name), Value: pair.Value})
	}
	return out
}
