package scheduler

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadCatalog decodes a YAML catalog and validates every template. Unknown
// keys are rejected.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty catalog", ErrInvalidTemplate)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that each template is non-empty, chronological and
// non-overlapping, and that fixed assignments only appear on breaks.
func (c *Catalog) Validate() error {
	templates := []struct {
		name string
		t    Template
	}{
		{"weekend", c.Weekend},
		{"weekday_no_class", c.WeekdayNoClass},
		{"weekday_with_class", c.WeekdayWithClass},
	}

	for _, tt := range templates {
		if err := tt.t.validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, tt.name, err)
		}
	}
	return nil
}

func (t Template) validate() error {
	if len(t) == 0 {
		return errors.New("no slots")
	}

	for i, ts := range t {
		if !ts.Kind.Valid() {
			return fmt.Errorf("slot %d: unknown kind %q", i, ts.Kind)
		}
		if !ts.Start.Before(ts.End) {
			return fmt.Errorf("slot %d: start %s is not before end %s", i, ts.Start, ts.End)
		}
		if ts.Fixed != nil && ts.Kind != KindBreak {
			return fmt.Errorf("slot %d: fixed task on a %s slot", i, ts.Kind)
		}
		if i > 0 && ts.Start.Before(t[i-1].End) {
			return fmt.Errorf("slot %d: overlaps previous slot", i)
		}
	}
	return nil
}
