package cardscript

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/mtgban/go-mtgscript/mtgjson"
	"github.com/mtgban/go-mtgscript/rewrite"
)

type PossessiveMode string

const (
	PossessivePreserve PossessiveMode = "preserve"
	PossessiveStrip    PossessiveMode = "strip"
)

// Policy collects the rules that changed between script generations.
type Policy struct {
	ImageHost        string         `toml:"image_host"`
	ExcludedSets     []string       `toml:"excluded_sets"`
	Possessive       PossessiveMode `toml:"possessive"`
	Filename         FilenameMode   `toml:"filename"`
	Extension        string         `toml:"extension"`
	PlaceholderToken string         `toml:"placeholder_token"`
}

func DefaultPolicy() Policy {
	return Policy{
		ImageHost:        DefaultImageHost,
		ExcludedSets:     append([]string{}, mtgjson.DefaultExcludedSets...),
		Possessive:       PossessivePreserve,
		Filename:         FilenamePlaceholder,
		Extension:        DefaultExtension,
		PlaceholderToken: rewrite.DefaultPlaceholder,
	}
}

func (p Policy) Validate() error {
	switch p.Possessive {
	case PossessivePreserve, PossessiveStrip:
	default:
		return fmt.Errorf("unknown possessive mode %q", p.Possessive)
	}
	switch p.Filename {
	case FilenamePlaceholder, FilenameTransliterate:
	default:
		return fmt.Errorf("unknown filename mode %q", p.Filename)
	}
	if p.PlaceholderToken == "" {
		return fmt.Errorf("empty placeholder token")
	}
	return nil
}

// LoadPolicy decodes a TOML policy, keys not present keep their default.
func LoadPolicy(r io.Reader) (Policy, error) {
	policy := DefaultPolicy()
	_, err := toml.NewDecoder(r).Decode(&policy)
	if err != nil {
		return policy, fmt.Errorf("error decoding policy: %w", err)
	}
	return policy, policy.Validate()
}

// WritePolicy encodes p as TOML.
func WritePolicy(w io.Writer, p Policy) error {
	return toml.NewEncoder(w).Encode(p)
}
