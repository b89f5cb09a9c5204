package ui

import (
	"fmt"
	"net/url"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/nsmirnova/portfolio-e2e/internal/poll"
)

// LinkState tags how far an outbound-link resolution got. The resolver
// always returns the state it reached, so callers never have to infer
// progress from window-handle counts.
type LinkState int

const (
	StateIdle LinkState = iota
	StateHrefRead
	StateNavigating
	StateResolved
)

func (s LinkState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHrefRead:
		return "href-read"
	case StateNavigating:
		return "navigating"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Resolution is the result of following an outbound link.
type Resolution struct {
	State     LinkState
	Href      string // declared href, as written in the DOM
	Host      string // hostname after the redirect chain settled
	OpenedTab bool   // true when a new browsing context was used
}

const newTabPollInterval = 100 * time.Millisecond

// ResolveLink reads the href of the first element matching selector, opens
// it in a new browsing context, and returns the resolved host once the
// redirect chain completes. If no new context appears within timeout the
// current page navigates in place instead. A transient tab is always closed
// and focus restored before returning. Navigation failures propagate with
// the state reached so far; there are no retries.
func ResolveLink(page playwright.Page, selector string, timeout time.Duration) (Resolution, error) {
	res := Resolution{State: StateIdle}

	loc := page.Locator(selector).First()
	href, err := loc.GetAttribute("href")
	if err != nil {
		return res, fmt.Errorf("read href of %s: %w", selector, err)
	}
	if href == "" {
		return res, fmt.Errorf("element %s has no href", selector)
	}
	res.Href = href
	res.State = StateHrefRead

	// Resolve relative hrefs against the current document so the in-place
	// fallback navigation gets an absolute URL.
	absURL, err := absoluteHref(page.URL(), href)
	if err != nil {
		return res, err
	}

	ctx := page.Context()
	pagesBefore := len(ctx.Pages())

	if _, err := page.Evaluate(`href => window.open(href, '_blank')`, absURL); err != nil {
		return res, fmt.Errorf("open %s: %w", href, err)
	}
	res.State = StateNavigating

	var target playwright.Page
	outcome := poll.Until(timeout, newTabPollInterval, func() (bool, error) {
		pages := ctx.Pages()
		if len(pages) > pagesBefore {
			target = pages[len(pages)-1]
			return true, nil
		}
		return false, nil
	})

	if outcome.Satisfied() {
		res.OpenedTab = true
	} else {
		// Popup suppressed: navigate the current context in place.
		if _, err := page.Goto(absURL); err != nil {
			return res, fmt.Errorf("navigate to %s: %w", href, err)
		}
		target = page
	}

	cleanup := func() {
		if res.OpenedTab {
			_ = target.Close()
			_ = page.BringToFront()
		}
	}

	// A fresh tab starts on about:blank; wait for the real navigation to
	// commit before reading the load state.
	committed := poll.Until(timeout, newTabPollInterval, func() (bool, error) {
		u := target.URL()
		return u != "" && u != "about:blank", nil
	})
	if !committed.Satisfied() {
		cleanup()
		return res, fmt.Errorf("link %s never committed a navigation", href)
	}

	if err := target.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	}); err != nil {
		cleanup()
		return res, fmt.Errorf("wait for %s to load: %w", href, err)
	}

	resolved, err := url.Parse(target.URL())
	if err != nil {
		cleanup()
		return res, fmt.Errorf("parse resolved url %q: %w", target.URL(), err)
	}
	res.Host = resolved.Hostname()

	cleanup()
	res.State = StateResolved
	return res, nil
}

func absoluteHref(pageURL, href string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse page url %q: %w", pageURL, err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parse href %q: %w", href, err)
	}
	return base.ResolveReference(ref).String(), nil
}
