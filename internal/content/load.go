package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrDuplicateKey is returned when two list items share the field they are
// keyed by.
var ErrDuplicateKey = errors.New("duplicate content key")

var validate = validator.New()

// Load reads a YAML content file. Fields the file omits keep the compiled-in
// defaults; lists present in the file replace the default lists wholesale.
func Load(path string) (*Site, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes YAML content on top of Default and validates the result.
func Parse(raw []byte) (*Site, error) {
	site := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(site); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := Validate(site); err != nil {
		return nil, err
	}
	return site, nil
}

// Validate checks struct tags and the uniqueness of every list key. Empty
// lists are valid and render no items.
func Validate(site *Site) error {
	if err := validate.Struct(site); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			fe := ves[0]
			return fmt.Errorf("content: %s failed validation for tag '%s'", fieldName(fe), fe.Tag())
		}
		return fmt.Errorf("content: %w", err)
	}

	titles := make([]string, 0, len(site.Skills))
	for _, cat := range site.Skills {
		titles = append(titles, cat.Title)
		if err := unique("skill in "+cat.Title, cat.Skills); err != nil {
			return err
		}
	}
	if err := unique("skill category", titles); err != nil {
		return err
	}

	titles = titles[:0]
	for _, p := range site.Projects {
		titles = append(titles, p.Title)
		if err := unique("tech in "+p.Title, p.TechStack); err != nil {
			return err
		}
	}
	if err := unique("project", titles); err != nil {
		return err
	}

	labels := make([]string, 0, len(site.Contacts))
	for _, c := range site.Contacts {
		labels = append(labels, c.Label)
	}
	return unique("contact", labels)
}

func unique(kind string, keys []string) error {
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%w: %s %q", ErrDuplicateKey, kind, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}
