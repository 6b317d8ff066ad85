// Package catalog holds the advisor's static reference knowledge: skin type
// descriptions, seasonal plans per skin type, concern guidance and ingredient
// conflict rules. A Catalog is read-only after Load.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/skinadvisor/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultDocument []byte

// ErrIncomplete is returned when a catalog document violates the
// completeness invariant.
var ErrIncomplete = errors.New("catalog incomplete")

// Plan is the routine and ingredient set for one (season, skin type) pair.
type Plan struct {
	Routine     []string `yaml:"routine"`
	Ingredients []string `yaml:"ingredients"`
}

// SeasonalPlan groups the plans for one season.
type SeasonalPlan struct {
	Icon  string                   `yaml:"icon"`
	Plans map[domain.SkinType]Plan `yaml:"plans"`
}

// ConcernProfile is the guidance attached to a skin concern.
type ConcernProfile struct {
	Ingredients []string `yaml:"ingredients"`
	Avoid       []string `yaml:"avoid"`
	Products    []string `yaml:"products"`
}

// ConflictRule declares that products containing Trigger should not be
// combined with products containing any of Incompatible. Matching is
// case-insensitive substring containment.
type ConflictRule struct {
	Trigger      string   `yaml:"trigger"`
	Incompatible []string `yaml:"incompatible"`
}

// Catalog is the decoded reference knowledge base.
type Catalog struct {
	SkinTypes map[domain.SkinType]string        `yaml:"skin_types"`
	Seasons   map[domain.Season]SeasonalPlan    `yaml:"seasons"`
	Concerns  map[domain.Concern]ConcernProfile `yaml:"concerns"`
	Conflicts []ConflictRule                    `yaml:"conflicts"`
}

// Load decodes the catalog at path, or the embedded default when path is
// empty, and verifies it.
func Load(path string) (*Catalog, error) {
	doc := defaultDocument
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", path, err)
		}
		doc = data
	}
	return Parse(doc)
}

// Parse decodes and verifies a catalog document.
func Parse(doc []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(doc))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	for i := range c.Conflicts {
		c.Conflicts[i].Trigger = strings.ToLower(strings.TrimSpace(c.Conflicts[i].Trigger))
		for j, inc := range c.Conflicts[i].Incompatible {
			c.Conflicts[i].Incompatible[j] = strings.ToLower(strings.TrimSpace(inc))
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// MustDefault returns the embedded catalog and panics if it is malformed.
func MustDefault() *Catalog {
	c, err := Load("")
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks that every season defines a non-empty plan for every skin
// type, every concern has an entry and every conflict rule is usable.
func (c *Catalog) Validate() error {
	var problems []string
	for _, st := range domain.AllSkinTypes {
		if c.SkinTypes[st] == "" {
			problems = append(problems, fmt.Sprintf("skin type %q has no description", st))
		}
	}
	for _, season := range domain.AllSeasons {
		sp, ok := c.Seasons[season]
		if !ok {
			problems = append(problems, fmt.Sprintf("season %q missing", season))
			continue
		}
		for _, st := range domain.AllSkinTypes {
			plan, ok := sp.Plans[st]
			if !ok {
				problems = append(problems, fmt.Sprintf("season %q has no plan for %q", season, st))
				continue
			}
			if len(plan.Routine) == 0 || len(plan.Ingredients) == 0 {
				problems = append(problems, fmt.Sprintf("season %q plan for %q is empty", season, st))
			}
		}
	}
	for _, concern := range domain.AllConcerns {
		if _, ok := c.Concerns[concern]; !ok {
			problems = append(problems, fmt.Sprintf("concern %q missing", concern))
		}
	}
	for i, rule := range c.Conflicts {
		if rule.Trigger == "" || len(rule.Incompatible) == 0 {
			problems = append(problems, fmt.Sprintf("conflict rule %d is empty", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(problems, "; "))
	}
	return nil
}

// Plan returns the plan for a season and skin type. The bool is false for
// keys the catalog does not know.
func (c *Catalog) Plan(season domain.Season, skin domain.SkinType) (Plan, bool) {
	sp, ok := c.Seasons[season]
	if !ok {
		return Plan{}, false
	}
	p, ok := sp.Plans[skin]
	return p, ok
}

// Icon returns the display icon for a season, or "" when unknown.
func (c *Catalog) Icon(season domain.Season) string {
	return c.Seasons[season].Icon
}

// Concern returns the guidance for a concern.
func (c *Catalog) Concern(concern domain.Concern) (ConcernProfile, bool) {
	cp, ok := c.Concerns[concern]
	return cp, ok
}

// Describe returns the description of a skin type, or "" when unknown.
func (c *Catalog) Describe(skin domain.SkinType) string {
	return c.SkinTypes[skin]
}
