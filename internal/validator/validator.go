package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/cardlist/internal/card"
	"github.com/arcanaland/cardlist/internal/catalog"
)

var knownTypes = []string{"Leader", "Character", "Event", "Stage", "Don"}

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// IDMatcher reports whether a card ID has the expected format
type IDMatcher interface {
	MatchID(id string) bool
}

type Validator struct {
	Path         string
	IDs          IDMatcher
	AltArtMarker string
	Results      ValidationResults
}

func NewValidator(path string, ids IDMatcher, altArtMarker string) *Validator {
	return &Validator{
		Path:         path,
		IDs:          ids,
		AltArtMarker: altArtMarker,
		Results:      ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.Path); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("card list not found: %s", v.Path)
	}

	cat, err := catalog.Load(v.Path)
	if err != nil {
		return v.Results, err
	}

	if cat.Len() == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "card list is empty")
	}

	cat.Each(v.validateEntry)

	return v.Results, nil
}

// validateEntry checks one card stored under key
func (v *Validator) validateEntry(key string, e card.Entry) {
	if e.ID != key {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%s: stored under a different id (%q)", key, e.ID))
	}

	if e.Name == "" {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: name is required", key))
	}

	front := e.Face.Front
	if front.Name != e.Name || front.Type != e.Type || front.Cost != e.Cost {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%s: face.front does not match the card fields", key))
	}

	if v.IDs != nil && !v.IDs.MatchID(e.ID) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: id does not match the identifier pattern", key))
	}

	if v.AltArtMarker != "" && strings.Contains(e.ID, v.AltArtMarker) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: id looks like an alternate art (contains %q)", key, v.AltArtMarker))
	}

	if len(e.Colors) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("%s: no colors", key))
	}

	if front.Image == "" {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("%s: no image", key))
	}

	if !contains(knownTypes, e.Type) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: unknown type %q", key, e.Type))
	}
}

// contains checks if a string is in a slice
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
