package validation

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DecodeRegistration reads one YAML (or JSON) registration document. Unknown
// keys are rejected so typos do not silently become empty fields.
func DecodeRegistration(r io.Reader) (Registration, error) {
	var out Registration
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return Registration{}, errors.New("validation: empty registration document")
		}
		return Registration{}, fmt.Errorf("validation: decode registration: %w", err)
	}
	return out, nil
}

// LoadRegistration decodes the registration file at path.
func LoadRegistration(path string) (Registration, error) {
	f, err := os.Open(path)
	if err != nil {
		return Registration{}, fmt.Errorf("validation: open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeRegistration(f)
}
