package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/jdn-utils/jdnutils/pkg/normstr"
)

// profileSchema closes the profile file format so misspelled keys are
// rejected instead of silently ignored.
const profileSchema = `
#Field: {
	name?:       string
	max_length?: int & >=1
	restricted?: string
}

#Profiles: {
	fields: [string]: #Field
}
`

// FieldProfile configures the constraints for one named field.
// Unset values fall back to normstr.Default.
type FieldProfile struct {
	Name       string  `json:"name,omitempty"`
	MaxLength  *int    `json:"max_length,omitempty"`
	Restricted *string `json:"restricted,omitempty"`
}

// Profiles maps field keys to their constraints.
//
//	fields:
//	  user_id:
//	    name: "User ID"
//	    max_length: 64
//	    restricted: ";,"
type Profiles struct {
	Fields map[string]FieldProfile `json:"fields"`
}

// Field returns the label and constraints for key. Unknown keys get
// normstr.Default and use key as the label.
func (p *Profiles) Field(key string) (string, normstr.Constraints) {
	c := normstr.Default
	label := key

	if p == nil {
		return label, c
	}
	f, ok := p.Fields[key]
	if !ok {
		return label, c
	}

	if f.Name != "" {
		label = f.Name
	}
	if f.MaxLength != nil {
		c.MaxLength = *f.MaxLength
	}
	if f.Restricted != nil {
		c.Restricted = *f.Restricted
	}
	return label, c
}

// Verify checks value against the constraints configured for key.
func (p *Profiles) Verify(key, value string) (normstr.String, error) {
	label, c := p.Field(key)
	return c.Verify(value, label)
}

// LoadProfiles loads field profiles from a YAML, JSON or CUE file and
// validates them against the profile schema.
func LoadProfiles(path string) (*Profiles, error) {
	ctx := cuecontext.New()

	val, err := loadValue(ctx, path)
	if err != nil {
		return nil, err
	}

	schema := ctx.CompileString(profileSchema)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile profile schema: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Profiles")).Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid profiles in %s: %w", path, err)
	}

	var profiles Profiles
	if err := unified.Decode(&profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return &profiles, nil
}
