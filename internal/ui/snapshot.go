package ui

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Snapshot captures the observable state of a toggle control at one point
// in time. Compared by structural equality only; never persisted.
type Snapshot struct {
	Text            string
	CSSClass        string
	BackgroundColor string
}

// effectiveBackgroundScript samples the element under the viewport center
// and walks its ancestor chain until a non-transparent background color is
// found, defaulting to the body background.
const effectiveBackgroundScript = `() => {
	const probe = document.elementFromPoint(
		Math.floor(window.innerWidth / 2),
		Math.floor(window.innerHeight / 2),
	) || document.body;
	for (let el = probe; el; el = el.parentElement) {
		const bg = getComputedStyle(el).backgroundColor;
		if (bg && bg !== 'transparent' && bg !== 'rgba(0, 0, 0, 0)') {
			return bg;
		}
	}
	return getComputedStyle(document.body).backgroundColor;
}`

// TakeSnapshot reads the toggle's text and class attribute plus the
// effective background color at the viewport center.
func TakeSnapshot(page playwright.Page, toggleSelector string) (Snapshot, error) {
	loc := page.Locator(toggleSelector).First()

	text, err := loc.TextContent()
	if err != nil {
		return Snapshot{}, fmt.Errorf("read text of %s: %w", toggleSelector, err)
	}
	class, err := loc.GetAttribute("class")
	if err != nil {
		return Snapshot{}, fmt.Errorf("read class of %s: %w", toggleSelector, err)
	}
	raw, err := page.Evaluate(effectiveBackgroundScript)
	if err != nil {
		return Snapshot{}, fmt.Errorf("sample background color: %w", err)
	}
	background, _ := raw.(string)

	return Snapshot{
		Text:            strings.TrimSpace(text),
		CSSClass:        class,
		BackgroundColor: background,
	}, nil
}

// Changed reports whether at least one field differs between two snapshots.
func Changed(before, after Snapshot) bool {
	return before != after
}

// Reverted reports whether all three fields match the original snapshot.
func Reverted(original, current Snapshot) bool {
	return original == current
}
