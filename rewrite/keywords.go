package rewrite

import (
	"regexp"
	"strings"
)

// KeywordRule recognizes one keyword ability in an effect. The first
// capture group of Pattern is the clause moved to the ability text.
type KeywordRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Catalog is an ordered list of KeywordRule. The order decides which rule
// is tried first, and therefore the order of the extracted clauses.
type Catalog []KeywordRule

// A keyword on a line of its own, possibly followed by its cost
func lineRule(name, clause string) KeywordRule {
	return KeywordRule{
		Name:    name,
		Pattern: regexp.MustCompile(`(?:^|~)(` + clause + `)(?:~|$)`),
	}
}

// A full sentence, starting a line or following another sentence
func sentenceRule(name, clause string) KeywordRule {
	return KeywordRule{
		Name:    name,
		Pattern: regexp.MustCompile(`(?:^|~|\. )(` + clause + `)`),
	}
}

// NewCatalog returns the default keyword catalog for effects in which the
// card name was replaced by placeholder.
func NewCatalog(placeholder string) Catalog {
	self := `(?:` + regexp.QuoteMeta(placeholder) + `|[Tt]his spell)`
	// Mana costs follow a space, other costs an em dash
	cost := `[ —][^~]+`

	return Catalog{
		// Costs
		sentenceRule("additional cost", `As an additional cost to cast `+self+`, [^~.]+\.`),
		sentenceRule("alternative cost", `(?:If [^~.]+?, )?[Yy]ou may [^~.]+? rather than pay `+self+`'s mana cost\.`),
		sentenceRule("cost modifier", self+` costs [^~.]+? (?:less|more) to cast[^~.]*\.`),
		sentenceRule("uncounterable", self+` can't be countered[^~.]*\.`),

		lineRule("split second", `Split second`),
		lineRule("kicker", `(?:Multikicker|Kicker)`+cost),
		lineRule("buyback", `Buyback`+cost),
		lineRule("entwine", `Entwine`+cost),
		lineRule("replicate", `Replicate`+cost),
		lineRule("splice", `Splice onto`+cost),
		lineRule("overload", `Overload`+cost),
		lineRule("flashback", `Flashback`+cost),
		lineRule("jump-start", `Jump-start`),
		lineRule("retrace", `Retrace`),
		lineRule("rebound", `Rebound`),
		lineRule("storm", `Storm`),
		lineRule("epic", `Epic`),
		lineRule("cascade", `Cascade`),
		lineRule("convoke", `Convoke`),
		lineRule("delve", `Delve`),
		lineRule("improvise", `Improvise`),
		lineRule("affinity", `Affinity for`+cost),
		lineRule("madness", `Madness`+cost),
		lineRule("miracle", `Miracle`+cost),
		lineRule("suspend", `Suspend`+cost),
		lineRule("cycling", `(?:Basic land|[A-Z][a-z]+)?[Cc]ycling [^~]+`),
		lineRule("transmute", `Transmute`+cost),
		lineRule("surge", `Surge`+cost),
		lineRule("spectacle", `Spectacle`+cost),
		lineRule("escalate", `Escalate`+cost),
		lineRule("awaken", `Awaken`+cost),
		lineRule("conspire", `Conspire`),
		lineRule("cipher", `Cipher`),
		lineRule("fuse", `Fuse`),
		lineRule("aftermath", `Aftermath`),
	}
}

// Extract moves keyword clauses out of the effect. The catalog is scanned
// from the top and the first matching rule removes its clause; scanning
// then starts over, until a full pass removes nothing.
func (c Catalog) Extract(effect string) ([]string, string) {
	var clauses []string
	for {
		clause, rest, found := c.extractOne(effect)
		if !found {
			return clauses, effect
		}
		clauses = append(clauses, clause)
		effect = rest
	}
}

func (c Catalog) extractOne(effect string) (string, string, bool) {
	for _, rule := range c {
		loc := rule.Pattern.FindStringSubmatchIndex(effect)
		if loc == nil || len(loc) < 4 || loc[2] < 0 || loc[2] == loc[3] {
			continue
		}
		clause := strings.Trim(effect[loc[2]:loc[3]], " "+Sentinel)
		if clause == "" {
			continue
		}
		return clause, tidy(effect[:loc[2]] + effect[loc[3]:]), true
	}
	return "", effect, false
}

// Rules returns the name of every rule, in catalog order.
func (c Catalog) Rules() []string {
	names := make([]string, 0, len(c))
	for _, rule := range c {
		names = append(names, rule.Name)
	}
	return names
}

var (
	sentinelRunExp = regexp.MustCompile(` *~[ ~]*`)
	doubleSpaceExp = regexp.MustCompile(` {2,}`)
)

// tidy closes the gap left by a removed clause.
func tidy(effect string) string {
	effect = sentinelRunExp.ReplaceAllString(effect, Sentinel)
	effect = doubleSpaceExp.ReplaceAllString(effect, " ")
	return strings.Trim(effect, " "+Sentinel)
}
