// Package ui provides the thin automation helpers the acceptance tests are
// built on: interception-tolerant click, clear-then-type fill, theme-state
// snapshots, and outbound-link resolution over a Playwright page.
package ui

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Click waits for the first element matching selector to become visible,
// scrolls it into the viewport and clicks it. If the native click is
// intercepted by an overlay, it falls back to exactly one script-issued
// click on the same element. Any other failure propagates.
func Click(page playwright.Page, selector string) error {
	loc := page.Locator(selector).First()

	if err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return fmt.Errorf("wait for %s: %w", selector, err)
	}
	if err := loc.ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("scroll %s into view: %w", selector, err)
	}

	err := loc.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(2000),
	})
	if err == nil {
		return nil
	}
	if !isInterceptedClick(err) {
		return fmt.Errorf("click %s: %w", selector, err)
	}
	if _, evalErr := loc.Evaluate("el => el.click()", nil); evalErr != nil {
		return fmt.Errorf("script click %s after interception: %w", selector, evalErr)
	}
	return nil
}

// isInterceptedClick matches the driver errors raised when another element
// swallows the pointer event.
func isInterceptedClick(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "intercepts pointer events") ||
		strings.Contains(msg, "element click intercepted")
}

// Fill waits for the first element matching selector to become visible,
// clears any existing content and types the full value. There is no retry:
// a stale element or detached node error propagates to the caller.
func Fill(page playwright.Page, selector, value string) error {
	loc := page.Locator(selector).First()

	if err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return fmt.Errorf("wait for %s: %w", selector, err)
	}
	if err := loc.Clear(); err != nil {
		return fmt.Errorf("clear %s: %w", selector, err)
	}
	if err := loc.Fill(value); err != nil {
		return fmt.Errorf("fill %s: %w", selector, err)
	}
	return nil
}
