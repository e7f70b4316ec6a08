package mtgjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrEmptyFeed = errors.New("empty AllSets feed")
var ErrCardDoesNotExist = errors.New("unknown card name")

type Set struct {
	Code         string `json:"code"`
	Cards        []Card `json:"cards"`
	IsOnlineOnly bool   `json:"onlineOnly"`
	Name         string `json:"name"`
	ReleaseDate  string `json:"releaseDate"`
	Type         string `json:"type"`
}

// Card is a single printing of a card as found in the AllSets feed.
type Card struct {
	Colors       []string   `json:"colors"`
	ImageName    string     `json:"imageName"`
	Layout       string     `json:"layout"`
	Loyalty      FlexString `json:"loyalty"`
	ManaCost     string     `json:"manaCost"`
	MultiverseId FlexString `json:"multiverseid"`
	Name         string     `json:"name"`
	Names        []string   `json:"names"`
	Number       string     `json:"number"`
	Power        string     `json:"power"`
	Rarity       string     `json:"rarity"`
	Subtypes     []string   `json:"subtypes"`
	Supertypes   []string   `json:"supertypes"`
	Text         string     `json:"text"`
	Toughness    string     `json:"toughness"`
	Type         string     `json:"type"`
	Types        []string   `json:"types"`

	// Not part of the card object, assigned from the parent set while loading
	SetCode string `json:"-"`
}

// Card implements the Stringer interface
func (c Card) String() string {
	if c.Number == "" {
		return fmt.Sprintf("[%s] %s", c.SetCode, c.Name)
	}
	return fmt.Sprintf("%s|%s|%s", c.Name, c.SetCode, c.Number)
}

// HasNumber reports whether the printing carries a collector number.
func (c *Card) HasNumber() bool {
	return c.Number != ""
}

// HasAlternateId reports whether the printing can be identified without
// a collector number.
func (c *Card) HasAlternateId() bool {
	return c.MultiverseId != ""
}

// FlexString decodes a JSON string or number into a string. Older feeds
// encode loyalty and multiverse ids as numbers.
type FlexString string

func (fs *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*fs = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		err := json.Unmarshal(data, &str)
		if err != nil {
			return err
		}
		*fs = FlexString(str)
		return nil
	}
	var num json.Number
	err := json.Unmarshal(data, &num)
	if err != nil {
		return err
	}
	*fs = FlexString(num.String())
	return nil
}

func (fs FlexString) String() string {
	return string(fs)
}

const RaritySpecial = "Special"

// Not interested in un-sets or vanguard
var DefaultExcludedSets = []string{"UNG", "UNH", "VAN"}

// Feed is the list of sets in the order they appear in the AllSets file.
type Feed []*Set

// Load a MTGJSON AllSets.json file and return its Feed.
func LoadAllSets(allSetsPath string) (Feed, error) {
	allSetsReader, err := os.Open(allSetsPath)
	if err != nil {
		return nil, err
	}
	defer allSetsReader.Close()

	return LoadAllSetsFromReader(allSetsReader)
}

// LoadAllSetsFromReader decodes an AllSets feed, keeping the order of sets.
func LoadAllSetsFromReader(r io.Reader) (Feed, error) {
	dec := json.NewDecoder(r)
	_, err := dec.Token()
	if err != nil {
		return nil, err
	}

	var feed Feed
	for dec.More() {
		val, err := dec.Token()
		if err != nil {
			return nil, err
		}

		code, ok := val.(string)
		if !ok {
			continue
		}

		var set Set
		err = dec.Decode(&set)
		if err != nil {
			return nil, fmt.Errorf("set %s: %w", code, err)
		}
		if set.Code == "" {
			set.Code = code
		}
		for i := range set.Cards {
			set.Cards[i].SetCode = set.Code
		}

		feed = append(feed, &set)
	}

	if len(feed) == 0 {
		return nil, ErrEmptyFeed
	}

	return feed, nil
}

// Filter returns the sets whose code is not listed in excluded,
// comparing codes case-insensitively.
func (feed Feed) Filter(excluded []string) Feed {
	var out Feed
	for _, set := range feed {
		skip := false
		for _, code := range excluded {
			if strings.EqualFold(set.Code, code) {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, set)
		}
	}
	return out
}

// Total number of printings across the feed.
func (feed Feed) Size() int {
	var size int
	for _, set := range feed {
		size += len(set.Cards)
	}
	return size
}

// Lookup the first printing with the given name.
func (feed Feed) Find(name string) (*Card, error) {
	for _, set := range feed {
		for i := range set.Cards {
			if set.Cards[i].Name == name {
				return &set.Cards[i], nil
			}
		}
	}
	for _, set := range feed {
		for i := range set.Cards {
			if Equals(set.Cards[i].Name, name) {
				return &set.Cards[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrCardDoesNotExist)
}
