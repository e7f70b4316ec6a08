package cardscript

import "strings"

// TypeSet is the set of card types of a record.
type TypeSet uint16

const (
	TypeArtifact TypeSet = 1 << iota
	TypeConspiracy
	TypeCreature
	TypeEnchantment
	TypeInstant
	TypeLand
	TypePhenomenon
	TypePlane
	TypePlaneswalker
	TypeScheme
	TypeSorcery
	TypeTribal
	TypeVanguard
)

var typeNames = map[string]TypeSet{
	"Artifact":     TypeArtifact,
	"Conspiracy":   TypeConspiracy,
	"Creature":     TypeCreature,
	"Enchantment":  TypeEnchantment,
	"Instant":      TypeInstant,
	"Land":         TypeLand,
	"Phenomenon":   TypePhenomenon,
	"Plane":        TypePlane,
	"Planeswalker": TypePlaneswalker,
	"Scheme":       TypeScheme,
	"Sorcery":      TypeSorcery,
	"Tribal":       TypeTribal,
	"Vanguard":     TypeVanguard,
}

// ParseTypes builds a TypeSet, unknown types are ignored.
func ParseTypes(types []string) TypeSet {
	var ts TypeSet
	for _, name := range types {
		ts |= typeNames[strings.TrimSpace(name)]
	}
	return ts
}

func (ts TypeSet) Has(t TypeSet) bool {
	return ts&t != 0
}

// IsEffect reports whether cards of this type resolve as a one-shot effect.
func (ts TypeSet) IsEffect() bool {
	return ts.Has(TypeInstant | TypeSorcery)
}

// SubtypeSet is the set of subtypes of a record, as found in the feed.
type SubtypeSet map[string]struct{}

// ParseSubtypes builds a SubtypeSet from the subtypes of a record.
func ParseSubtypes(subtypes []string) SubtypeSet {
	ss := SubtypeSet{}
	for _, name := range subtypes {
		ss[name] = struct{}{}
	}
	return ss
}

func (ss SubtypeSet) Has(subtype string) bool {
	_, found := ss[subtype]
	return found
}

// JoinTypes prepends supertypes to types, comma separated.
func JoinTypes(supertypes, types []string) string {
	all := make([]string, 0, len(supertypes)+len(types))
	all = append(all, supertypes...)
	all = append(all, types...)
	return strings.Join(all, ",")
}

var possessiveReplacer = strings.NewReplacer("’s", "'s")
var subtypeReplacer = strings.NewReplacer(" ", "_", "-", "_")

// JoinSubtypes formats the subtypes for a script: spaces and hyphens become
// underscores and possessives are handled according to mode.
func JoinSubtypes(subtypes []string, mode PossessiveMode) string {
	out := make([]string, 0, len(subtypes))
	for _, subtype := range subtypes {
		subtype = possessiveReplacer.Replace(subtype)
		if mode == PossessiveStrip {
			subtype = strings.ReplaceAll(subtype, "'s", "")
		}
		out = append(out, subtypeReplacer.Replace(subtype))
	}
	return strings.Join(out, ",")
}
