// Package rewrite derives the ability, effect and oracle attributes of a
// card script from the free-form rules text found in the card feed.
//
// The text is processed by an ordered list of substitution passes. Passes
// never fail: input a pass does not recognize is left untouched.
package rewrite

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// Sentinel joins the lines of an effect while it is being processed.
	Sentinel = "~"

	// AbilitySeparator joins ability clauses, continuing the script line.
	AbilitySeparator = ";\\\n        "

	// DefaultPlaceholder is the token standing for the card's own name.
	DefaultPlaceholder = "SN"

	// Bullet starts a mode of a modal spell.
	Bullet = "•"
)

// Attributes are the text attributes derived from a card's rules text.
type Attributes struct {
	Ability string
	Effect  string
	Oracle  string
}

// Pipeline holds the configurable parts of the rewrite passes.
type Pipeline struct {
	Placeholder string
	Keywords    Catalog
}

// NewPipeline returns a Pipeline substituting the card name with
// placeholder, extracting keywords with the default catalog order.
func NewPipeline(placeholder string) *Pipeline {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Pipeline{
		Placeholder: placeholder,
		Keywords:    NewCatalog(placeholder),
	}
}

var defaultPipeline = NewPipeline(DefaultPlaceholder)

// Derive runs the default Pipeline.
func Derive(text, name string, isEffect bool) Attributes {
	return defaultPipeline.Derive(text, name, isEffect)
}

// Derive computes the Attributes of a card named name. When isEffect is set
// (instants and sorceries) the text becomes an effect, from which keyword
// clauses are moved to the ability; otherwise the text becomes the ability.
func (p *Pipeline) Derive(text, name string, isEffect bool) Attributes {
	var attrs Attributes
	if text == "" {
		return attrs
	}

	// Output of a previous run folds lines with the separator
	text = strings.ReplaceAll(text, AbilitySeparator, "\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	text = Prepare(text)
	attrs.Oracle = Oracle(text)

	if isEffect {
		attrs.Ability, attrs.Effect = p.effect(text, name)
	} else {
		attrs.Ability = p.ability(text, name)
	}
	return attrs
}

var (
	// A whole first line in parentheses, such as the reminder of a keyword
	// granted to all cards of a set
	leadingReminderExp = regexp.MustCompile(`^\([^\d\n][^\n]*\)\n`)

	// Ability words and similar labels ahead of the rules
	preambleExp = regexp.MustCompile(`^[^\n.~()—]{1,40}?— `)

	// Inline reminder text after a space, at least one character must not
	// be a digit so that numbered modes survive. A line made of reminder
	// text only, as on basic lands, is rules text and stays.
	reminderExp = regexp.MustCompile(` \([^()\n]*[^()\d\n][^()\n]*\)`)

	// Ability words found on later lines of an effect
	embeddedPreambleExp = regexp.MustCompile(`~[^~.()—]{1,40}? — `)

	markerExp = regexp.MustCompile(` ?\(\d\)`)
	modeExp   = regexp.MustCompile(`^\(\d\)`)
)

// Prepare applies the passes shared by abilities and effects. It drops the
// leading reminder line when more rules follow it, then the ability word
// ahead of the rules, then inline reminder text.
func Prepare(text string) string {
	text = leadingReminderExp.ReplaceAllString(text, "")
	text = stripPreamble(text)
	return stripReminders(text)
}

func stripPreamble(text string) string {
	loc := preambleExp.FindStringIndex(text)
	if loc == nil {
		return text
	}
	rest := text[loc[1]:]
	// Never strip everything, nor the header of a list of modes
	if strings.TrimSpace(rest) == "" || modeExp.MatchString(rest) {
		return text
	}
	return rest
}

func stripReminders(text string) string {
	text = reminderExp.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func (p *Pipeline) effect(text, name string) (string, string) {
	text = strings.ReplaceAll(text, "\n", Sentinel)
	text = embeddedPreambleExp.ReplaceAllString(text, Sentinel)
	text = strings.ReplaceAll(text, Sentinel+Bullet, " "+Bullet)
	text = NumberBullets(text)
	text = SelfReference(text, name, p.Placeholder)

	clauses, text := p.Keywords.Extract(text)

	return strings.Join(clauses, AbilitySeparator), render(text)
}

func (p *Pipeline) ability(text, name string) string {
	text = strings.ReplaceAll(text, "\n"+Bullet, " "+Bullet)
	text = strings.ReplaceAll(text, "\n", AbilitySeparator)
	text = NumberBullets(text)
	return SelfReference(text, name, p.Placeholder)
}

// MaxNumberedBullets is the number of modes that receive a marker.
const MaxNumberedBullets = 4

// NumberBullets replaces the first bullets of text with the markers " (1)"
// to " (4)". Markers already present count towards the limit, further
// bullets are left as they are.
func NumberBullets(text string) string {
	n := len(markerExp.FindAllStringIndex(text, -1))
	for n < MaxNumberedBullets {
		idx := strings.Index(text, Bullet)
		if idx < 0 {
			break
		}
		n++
		start := idx
		if start > 0 && text[start-1] == ' ' {
			start--
		}
		text = text[:start] + " (" + strconv.Itoa(n) + ")" + text[idx+len(Bullet):]
	}
	return strings.TrimSpace(text)
}

var spacesExp = regexp.MustCompile(`\s{2,}`)

// render turns the sentinel-joined effect into a single line.
func render(text string) string {
	text = strings.ReplaceAll(text, Sentinel, " ")
	text = spacesExp.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
