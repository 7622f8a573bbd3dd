// Package months orders month-name labels chronologically.
//
// Labels are compared after normalization: lower-cased, trimmed, inner
// whitespace collapsed and diacritics removed, so "Enero", " enero " and
// "ENERO" are the same month.
package months

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Supported locales.
const (
	LocaleSpanish = "es"
	LocaleEnglish = "en"
)

var canonical = map[string][12]string{
	LocaleSpanish: {"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	LocaleEnglish: {"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december"},
}

// aliases map alternative spellings onto a canonical label.
var aliases = map[string]map[string]string{
	LocaleSpanish: {"setiembre": "septiembre"},
	LocaleEnglish: {"sept": "september"},
}

// Order is a fixed total order over the twelve month labels of a locale.
type Order struct {
	locale   string
	labels   [12]string
	position map[string]int
}

// NewOrder returns the month order for locale.
func NewOrder(locale string) (*Order, error) {
	labels, ok := canonical[locale]
	if !ok {
		return nil, fmt.Errorf("unsupported month locale: %s (must be one of %s)", locale, strings.Join(Locales(), ", "))
	}

	position := make(map[string]int, len(labels)+len(aliases[locale]))
	for i, l := range labels {
		position[l] = i
	}
	for alias, target := range aliases[locale] {
		position[alias] = position[target]
	}

	return &Order{locale: locale, labels: labels, position: position}, nil
}

// MustOrder is NewOrder for locales known to be valid.
func MustOrder(locale string) *Order {
	o, err := NewOrder(locale)
	if err != nil {
		panic(err)
	}
	return o
}

// Locales lists the supported locales in a stable order.
func Locales() []string {
	out := make([]string, 0, len(canonical))
	for l := range canonical {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Locale returns the locale of the order.
func (o *Order) Locale() string {
	return o.locale
}

// Labels returns the canonical labels in chronological order.
func (o *Order) Labels() []string {
	return append([]string(nil), o.labels[:]...)
}

// Normalize lower-cases, trims, collapses whitespace and strips diacritics.
func Normalize(label string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), label)
	if err != nil {
		stripped = label
	}
	return strings.ToLower(strings.Join(strings.Fields(stripped), " "))
}

// Position returns the zero-based chronological index of label.
func (o *Order) Position(label string) (int, bool) {
	p, ok := o.position[Normalize(label)]
	return p, ok
}

// Canonical returns the canonical spelling of label, resolving aliases.
func (o *Order) Canonical(label string) (string, bool) {
	p, ok := o.Position(label)
	if !ok {
		return "", false
	}
	return o.labels[p], true
}

// IsMonth reports whether label names a month of the locale.
func (o *Order) IsMonth(label string) bool {
	_, ok := o.Position(label)
	return ok
}

// Sequence returns a copy of items stably sorted by the month returned by
// label. Items whose label is not a month keep their relative order after
// all known months; their normalized labels are returned in unknown, in
// first-seen order and without repeats.
func Sequence[T any](o *Order, items []T, label func(T) string) (sorted []T, unknown []string) {
	sorted = append([]T(nil), items...)
	rank := func(item T) int {
		if p, ok := o.Position(label(item)); ok {
			return p
		}
		return len(o.labels)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return rank(sorted[i]) < rank(sorted[j])
	})

	seen := make(map[string]bool)
	for _, item := range sorted {
		l := label(item)
		if o.IsMonth(l) {
			continue
		}
		n := Normalize(l)
		if !seen[n] {
			seen[n] = true
			unknown = append(unknown, n)
		}
	}
	return sorted, unknown
}
