package options

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"remapper/internal/match"
	"remapper/primitive"
)

var ErrUnknownCategory = errors.New("unknown conversion category")

var categoryNames = map[string]primitive.CategoryEnum{
	"safe_number":   primitive.CategorySafeNumber,
	"unsafe_number": primitive.CategoryUnsafeNumber,
	"text_number":   primitive.CategoryTextNumber,
	"numeric_bool":  primitive.CategoryNumericBool,
	"textual_bool":  primitive.CategoryTextualBool,
	"datetime":      primitive.CategoryDatetime,
	"timestamp":     primitive.CategoryTimestamp,
	"duration":      primitive.CategoryDuration,
	"nanoseconds":   primitive.CategoryNanoseconds,
	"seconds":       primitive.CategorySeconds,
	"enum_string":   primitive.CategoryEnumString,
	"numeric_enum":  primitive.CategoryNumericEnum,
	"all":           primitive.CategoryAll,
	"none":          primitive.CategoryNone,
}

// ParseCategories combines named conversion categories into one set.
// Names are matched ignoring case and separators, so "textNumber" and
// "text-number" both select CategoryTextNumber.
func ParseCategories(names ...string) (primitive.CategoryEnum, error) {
	var set primitive.CategoryEnum

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		category, ok := lookupCategory(name)
		if !ok {
			if suggestion, found := match.Suggest(name, CategoryNames()); found {
				return 0, fmt.Errorf("%w: %q, did you mean %q?", ErrUnknownCategory, name, suggestion)
			}

			return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
		}

		set |= category
	}

	return set, nil
}

// FormatCategories lists the single categories contained in set.
func FormatCategories(set primitive.CategoryEnum) []string {
	switch set {
	case primitive.CategoryAll:
		return []string{"all"}
	case primitive.CategoryNone:
		return []string{"none"}
	}

	var names []string

	for name, category := range categoryNames {
		if category == primitive.CategoryAll || category == primitive.CategoryNone {
			continue
		}

		if set&category != 0 {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

// CategoryNames returns every accepted category name, sorted.
func CategoryNames() []string {
	names := make([]string, 0, len(categoryNames))
	for name := range categoryNames {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func lookupCategory(name string) (primitive.CategoryEnum, bool) {
	if category, ok := categoryNames[name]; ok {
		return category, true
	}

	want := match.NormalizeIdent(name)
	for known, category := range categoryNames {
		if match.NormalizeIdent(known) == want {
			return category, true
		}
	}

	return 0, false
}
