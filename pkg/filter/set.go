// Package filter keeps the set of active quote categories used for filtered fetches.
package filter

import (
	"slices"
	"strings"
	"sync"
)

// None is the reserved value meaning "no filter"
const None = "None"

// Set is an ordered set of category names, safe for concurrent use.
// None is mutually exclusive with concrete categories.
type Set struct {
	mu     sync.RWMutex
	values []string
}

// NewSet makes a set from the initial values, duplicates are dropped
func NewSet(values ...string) *Set {
	s := &Set{}
	s.Reset(values)
	return s
}

// Toggle flips category membership. Toggling None clears all concrete categories,
// toggling a concrete category removes None.
func (s *Set) Toggle(category string) {
	category = strings.TrimSpace(category)
	if category == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if category == None {
		s.values = []string{None}
		return
	}

	s.values = slices.DeleteFunc(s.values, func(v string) bool { return v == None })
	if idx := slices.Index(s.values, category); idx >= 0 {
		s.values = slices.Delete(s.values, idx, idx+1)
		return
	}
	s.values = append(s.values, category)
}

// Clear removes all categories
func (s *Set) Clear() {
	s.mu.Lock()
	s.values = nil
	s.mu.Unlock()
}

// Reset replaces the content of the set, keeping None exclusive
func (s *Set) Reset(values []string) {
	res := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(res, v) {
			continue
		}
		if v == None {
			res = []string{None}
			break
		}
		res = append(res, v)
	}

	s.mu.Lock()
	s.values = res
	s.mu.Unlock()
}

// Current returns concrete categories in insertion order, None excluded
func (s *Set) Current() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]string, 0, len(s.values))
	for _, v := range s.values {
		if v != None {
			res = append(res, v)
		}
	}
	return res
}

// Values returns the raw content of the set, None included
func (s *Set) Values() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.values)
}

// Describe joins concrete categories with sep
func (s *Set) Describe(sep string) string {
	return strings.Join(s.Current(), sep)
}

// Known returns the catalogue of well-known quote categories
func Known() []string {
	return slices.Clone(knownCategories)
}

var knownCategories = []string{
	"Age", "Athletics", "Business", "Change", "Character", "Competition", "Conservative", "Courage",
	"Creativity", "Education", "Ethics", "Failure", "Faith", "Family", "Famous Quotes", "Film",
	"Freedom", "Friendship", "Future", "Generosity", "Genius", "Gratitude", "Happiness", "Health",
	"History", "Honor", "Humor", "Humorous", "Imagination", "Inspirational", "Knowledge", "Leadership",
	"Life", "Literature", "Love", "Mathematics", "Motivational", "Nature", "Opportunity", "Pain",
	"Perseverance", "Philosophy", "Politics", "Power Quotes", "Proverb", "Religion", "Sadness",
	"Science", "Self", "Self Help", "Social Justice", "Society", "Spirituality", "Sports", "Stupidity",
	"Success", "Technology", "Time", "Tolerance", "Truth", "Virtue", "War", "Weakness", "Wellness",
	"Wisdom", "Work",
}
