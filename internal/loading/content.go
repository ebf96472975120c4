package loading

import (
	"fmt"

	"github.com/nilote/bootsplash/internal/errors"
)

// Category selects how a content item is rendered.
type Category string

// Known content categories.
const (
	CategoryPartnership Category = "partnership"
	CategoryPowered     Category = "powered"
	CategoryJourney     Category = "journey"
	CategoryModern      Category = "modern"
)

// Categories returns the categories that have a render branch.
func Categories() []Category {
	return []Category{CategoryPartnership, CategoryPowered, CategoryJourney, CategoryModern}
}

// Known reports whether the category has a render branch.
func (c Category) Known() bool {
	switch c {
	case CategoryPartnership, CategoryPowered, CategoryJourney, CategoryModern:
		return true
	default:
		return false
	}
}

// ContentItem is one promotional record in the rotation.
type ContentItem struct {
	// Text is the lead-in ("Powered by", "Built for", ...).
	Text string
	// Company is the emphasized name for partnership and powered items.
	Company string
	// Highlight is the emphasized phrase for journey and modern items.
	Highlight string
	Category  Category
	// Gradient holds the two hex colors the emphasized part is drawn with.
	Gradient [2]string
}

// Emphasis returns the part of the item drawn with the gradient or glow.
func (c ContentItem) Emphasis() string {
	switch c.Category {
	case CategoryPartnership, CategoryPowered:
		return c.Company
	case CategoryJourney, CategoryModern:
		return c.Highlight
	default:
		return ""
	}
}

// String renders the item as plain text, used by the headless host.
func (c ContentItem) String() string {
	emphasis := c.Emphasis()
	if emphasis == "" {
		return c.Text
	}
	return fmt.Sprintf("%s %s", c.Text, emphasis)
}

// DefaultContent returns the built-in rotation. A fresh slice is returned
// on every call.
func DefaultContent() []ContentItem {
	return []ContentItem{
		{
			Text:     "In partnership with",
			Company:  "DERIV",
			Category: CategoryPartnership,
			Gradient: [2]string{"#F59E0B", "#F97316"}, // Gold to orange
		},
		{
			Text:     "Powered by",
			Company:  "DERIV",
			Category: CategoryPowered,
			Gradient: [2]string{"#EC4899", "#8B5CF6"}, // Pink to purple
		},
		{
			Text:      "Simplifying your",
			Highlight: "trading journey",
			Category:  CategoryJourney,
			Gradient:  [2]string{"#10B981", "#06D6A0"}, // Emerald to cyan
		},
		{
			Text:      "Built for",
			Highlight: "modern traders",
			Category:  CategoryModern,
			Gradient:  [2]string{"#6366F1", "#8B5CF6"}, // Indigo to purple
		},
	}
}

// CheckContent reports items that will not render as intended. Unknown
// categories still rotate but show an empty content region, so every
// problem here is a warning, not a reason to refuse the list.
func CheckContent(items []ContentItem) []error {
	var problems []error
	for i, item := range items {
		if !item.Category.Known() {
			problems = append(problems, errors.NewContentError("no render branch, region will be empty", errors.ErrUnknownCategory).
				WithIndex(i).
				WithCategory(string(item.Category)))
			continue
		}
		if item.Text == "" && item.Emphasis() == "" {
			problems = append(problems, errors.NewContentError("nothing to display", errors.ErrEmptyContent).
				WithIndex(i).
				WithCategory(string(item.Category)))
		}
	}
	return problems
}
