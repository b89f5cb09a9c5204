// Package pages is the page-object facade over the portfolio site. It names
// the workflows the acceptance tests exercise and keeps every locator in one
// place; all interaction goes through the primitives in internal/ui.
package pages

import (
	"fmt"
	"net/url"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/nsmirnova/portfolio-e2e/internal/ui"
)

// Static locators. Defined once, never computed.
const (
	ThemeToggle    = "#theme-toggle"
	LangToggle     = "#lang-toggle"
	ContactForm    = "#contact-form"
	ContactName    = "#contact-name"
	ContactEmail   = "#contact-email"
	ContactMessage = "#contact-message"
	ContactSubmit  = "#contact-submit"
	ContactStatus  = "#contact-status"
	Tagline        = "#tagline"
)

// SocialLinks lists the outbound links the suite validates. The ids double
// as keys into the allowed-host table.
var SocialLinks = []string{"github-link", "linkedin-link", "telegram-link"}

// Portfolio wraps a page plus the site base URL with named workflows.
type Portfolio struct {
	page    playwright.Page
	baseURL string
}

func New(page playwright.Page, baseURL string) *Portfolio {
	return &Portfolio{page: page, baseURL: baseURL}
}

// Page exposes the underlying driver page for assertions the facade does
// not cover.
func (p *Portfolio) Page() playwright.Page {
	return p.page
}

// Open loads the portfolio landing page and waits for DOMContentLoaded.
func (p *Portfolio) Open() error {
	_, err := p.page.Goto(p.baseURL+"/", playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		return fmt.Errorf("open portfolio page: %w", err)
	}
	return nil
}

// Title returns the document title.
func (p *Portfolio) Title() (string, error) {
	return p.page.Title()
}

// ToggleTheme clicks the theme toggle once.
func (p *Portfolio) ToggleTheme() error {
	return ui.Click(p.page, ThemeToggle)
}

// ThemeState snapshots the toggle text, class and effective background.
func (p *Portfolio) ThemeState() (ui.Snapshot, error) {
	return ui.TakeSnapshot(p.page, ThemeToggle)
}

// CurrentLanguage reads the lang attribute of the document element.
func (p *Portfolio) CurrentLanguage() (string, error) {
	lang, err := p.page.Locator("html").GetAttribute("lang")
	if err != nil {
		return "", fmt.Errorf("read document language: %w", err)
	}
	return lang, nil
}

// SwitchLanguage clicks the language toggle until the document language
// matches lang. The switcher cycles two languages, so one click suffices;
// a no-op when the language is already active.
func (p *Portfolio) SwitchLanguage(lang string) error {
	current, err := p.CurrentLanguage()
	if err != nil {
		return err
	}
	if current == lang {
		return nil
	}
	if err := ui.Click(p.page, LangToggle); err != nil {
		return err
	}
	current, err = p.CurrentLanguage()
	if err != nil {
		return err
	}
	if current != lang {
		return fmt.Errorf("language is %q after switching, want %q", current, lang)
	}
	return nil
}

// FillContactForm fills all three contact fields without submitting.
func (p *Portfolio) FillContactForm(name, email, message string) error {
	if err := ui.Fill(p.page, ContactName, name); err != nil {
		return err
	}
	if err := ui.Fill(p.page, ContactEmail, email); err != nil {
		return err
	}
	return ui.Fill(p.page, ContactMessage, message)
}

// SubmitContactForm fills the form and clicks Send.
func (p *Portfolio) SubmitContactForm(name, email, message string) error {
	if err := p.FillContactForm(name, email, message); err != nil {
		return err
	}
	return ui.Click(p.page, ContactSubmit)
}

// ContactStatusText returns the text of the submission status banner.
func (p *Portfolio) ContactStatusText() (string, error) {
	return p.page.Locator(ContactStatus).TextContent()
}

// FieldValid runs native constraint validation on a single field.
func (p *Portfolio) FieldValid(selector string) (bool, error) {
	raw, err := p.page.Locator(selector).First().Evaluate("el => el.checkValidity()", nil)
	if err != nil {
		return false, fmt.Errorf("checkValidity on %s: %w", selector, err)
	}
	valid, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("checkValidity on %s returned %T", selector, raw)
	}
	return valid, nil
}

// SocialHrefHost resolves the declared href of a social link against the
// base URL and returns its hostname. Relative hrefs resolve to the site
// host, absolute ones keep their own.
func (p *Portfolio) SocialHrefHost(linkID string) (string, error) {
	href, err := p.page.Locator("#"+linkID).GetAttribute("href")
	if err != nil {
		return "", fmt.Errorf("read href of #%s: %w", linkID, err)
	}
	base, err := url.Parse(p.baseURL + "/")
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parse href %q: %w", href, err)
	}
	return base.ResolveReference(ref).Hostname(), nil
}

// ResolveSocialLink follows a social link and reports the resolved host.
func (p *Portfolio) ResolveSocialLink(linkID string, timeout time.Duration) (ui.Resolution, error) {
	return ui.ResolveLink(p.page, "#"+linkID, timeout)
}
