package model

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout renders submission times the way an en-US browser renders
// Date.toLocaleString().
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// Payload is the immutable record dispatched to the form endpoint. Build it
// with BuildPayload; accessors hand out copies.
type Payload struct {
	id        uuid.UUID
	values    map[FieldName]string
	timestamp string
}

// BuildPayload captures the payload fields of form at time now.
func BuildPayload(form *Form, now time.Time) Payload {
	values := make(map[FieldName]string, len(PayloadFields))
	for _, name := range PayloadFields {
		values[name] = form.Value(name)
	}
	return Payload{
		id:        uuid.New(),
		values:    values,
		timestamp: now.Format(TimestampLayout),
	}
}

// ID is a correlation identifier for logs. It is never sent.
func (p Payload) ID() uuid.UUID {
	return p.id
}

// Value returns a single field value.
func (p Payload) Value(name FieldName) string {
	if name == FieldTimestamp {
		return p.timestamp
	}
	return p.values[name]
}

// Timestamp returns the formatted creation time.
func (p Payload) Timestamp() string {
	return p.timestamp
}

// Pair is an ordered wire field.
type Pair struct {
	Name  FieldName
	Value string
}

// Fields returns the wire fields in order: the payload fields, the timestamp
// and, when subject is non-empty, the _subject line.
func (p Payload) Fields(subject string) []Pair {
	out := make([]Pair, 0, len(PayloadFields)+2)
	for _, name := range PayloadFields {
		out = append(out, Pair{Name: name, Value: p.values[name]})
	}
	out = append(out, Pair{Name: FieldTimestamp, Value: p.timestamp})
	if subject != "" {
		out = append(out, Pair{Name: FieldSubject, Value: subject})
	}
	return out
}

// Map returns a copy of the payload as a plain map, timestamp included.
func (p Payload) Map() map[string]string {
	out := make(map[string]string, len(p.values)+1)
	for name, value := range p.values {
		out[string(name)] = value
	}
	out[string(FieldTimestamp)] = p.timestamp
	return out
}
