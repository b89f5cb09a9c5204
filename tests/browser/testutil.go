// Package browser provides shared test utilities for the Playwright
// acceptance tests. All test files use SuiteEnv via SetupSuiteEnv(t).
//
// By default the suite runs against an in-process fixture copy of the
// portfolio site; set PORTFOLIO_BASE_URL to point it at a live deployment.
package browser

import (
	"net/http/httptest"
	"net/url"
	"os"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/nsmirnova/portfolio-e2e/internal/config"
	"github.com/nsmirnova/portfolio-e2e/internal/hosts"
	"github.com/nsmirnova/portfolio-e2e/internal/site"
)

const (
	// Ceiling for the package-level wait helpers. Never introduce a larger
	// timeout value anywhere in tests/browser; UITEST_TIMEOUT may shorten
	// the per-page budget but not exceed this.
	browserMaxTimeoutMS = 5000
	browserMaxTimeout   = 5 * time.Second
)

var suiteMu sync.Mutex
var sharedSuite *SuiteEnv

// strayDriverOnce runs the process-wide driver cleanup hook at most once
// per test process, regardless of how many tests request a browser.
var strayDriverOnce sync.Once

// SuiteEnv is the unified environment for all browser tests: the target
// site (fixture or live), the wait budgets, and the shared browser.
type SuiteEnv struct {
	BaseURL string
	Hosts   hosts.Table
	Live    bool

	// Wait budgets from internal/config (UITEST_TIMEOUT, UITEST_POLL_INTERVAL).
	Timeout      time.Duration
	PollInterval time.Duration

	headless bool
	server   *httptest.Server

	pw        *playwright.Playwright
	browser   playwright.Browser
	browserMu sync.Mutex
}

// SetupSuiteEnv returns the shared suite environment, creating it on first use.
func SetupSuiteEnv(t *testing.T) *SuiteEnv {
	t.Helper()

	suiteMu.Lock()
	defer suiteMu.Unlock()

	if sharedSuite != nil {
		return sharedSuite
	}
	sharedSuite = createSuiteEnv(t)
	return sharedSuite
}

func createSuiteEnv(t *testing.T) *SuiteEnv {
	t.Helper()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Failed to load suite configuration: %v", err)
	}

	env := &SuiteEnv{
		Timeout:      capTimeout(cfg.DefaultTimeout),
		PollInterval: cfg.PollInterval,
		headless:     cfg.Headless,
	}

	if cfg.BaseURL != "" {
		table, err := hosts.Default()
		if err != nil {
			t.Fatalf("Failed to load allowed-host table: %v", err)
		}
		env.BaseURL = cfg.BaseURL
		env.Hosts = table
		env.Live = true
		return env
	}

	server := httptest.NewServer(site.NewHandler())
	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("Failed to parse fixture server URL: %v", err)
	}

	// On the fixture site every social link stays on the fixture host.
	table := hosts.Table{}
	for _, id := range []string{"github-link", "linkedin-link", "telegram-link"} {
		table[id] = []string{u.Hostname()}
	}

	env.BaseURL = server.URL
	env.Hosts = table
	env.server = server
	return env
}

func capTimeout(d time.Duration) time.Duration {
	if d > browserMaxTimeout {
		return browserMaxTimeout
	}
	return d
}

func cleanupSharedSuite() {
	suiteMu.Lock()
	defer suiteMu.Unlock()
	if sharedSuite == nil {
		return
	}
	if sharedSuite.browser != nil {
		_ = sharedSuite.browser.Close()
	}
	if sharedSuite.pw != nil {
		_ = sharedSuite.pw.Stop()
	}
	if sharedSuite.server != nil {
		sharedSuite.server.Close()
	}
	sharedSuite = nil
}

func TestMain(m *testing.M) {
	code := m.Run()
	cleanupSharedSuite()
	os.Exit(code)
}

// killStrayDrivers reaps browser driver processes left behind by earlier
// crashed runs. Opt-in via UITEST_KILL_STRAY=1; runs once per test process.
func killStrayDrivers() {
	if os.Getenv("UITEST_KILL_STRAY") != "1" {
		return
	}
	for _, pattern := range []string{"playwright.sh", "headless_shell"} {
		_ = exec.Command("pkill", "-f", pattern).Run()
	}
}

// InitBrowser initializes Playwright and launches Chromium. Skips the test
// if the driver is not available.
func (env *SuiteEnv) InitBrowser(t *testing.T) {
	t.Helper()

	strayDriverOnce.Do(killStrayDrivers)

	env.browserMu.Lock()
	defer env.browserMu.Unlock()

	if env.browser != nil {
		return
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Skip("Playwright not available:", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(env.headless),
	})
	if err != nil {
		_ = pw.Stop()
		t.Skip("Could not launch browser:", err)
	}
	env.pw = pw
	env.browser = browser
}

// timeoutMS returns the page wait budget in Playwright's millisecond float.
func (env *SuiteEnv) timeoutMS() float64 {
	return float64(env.Timeout.Milliseconds())
}

// NewPage creates a page in a fresh browser context with the configured
// default timeout so each test starts from clean cookies and localStorage.
func (env *SuiteEnv) NewPage(t *testing.T) playwright.Page {
	t.Helper()

	ctx, err := env.browser.NewContext()
	if err != nil {
		t.Fatalf("could not create browser context: %v", err)
	}
	t.Cleanup(func() { _ = ctx.Close() })
	ctx.SetDefaultTimeout(env.timeoutMS())
	ctx.SetDefaultNavigationTimeout(env.timeoutMS())

	page, err := ctx.NewPage()
	if err != nil {
		t.Fatalf("could not create page: %v", err)
	}
	page.SetDefaultTimeout(env.timeoutMS())
	page.SetDefaultNavigationTimeout(env.timeoutMS())
	return page
}

// Navigate navigates to a path on the target site and waits for DOMContentLoaded.
func Navigate(t *testing.T, page playwright.Page, baseURL, path string) {
	t.Helper()

	_, err := page.Goto(baseURL+path, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(browserMaxTimeoutMS),
	})
	if err != nil {
		t.Fatalf("Failed to navigate to %s: %v", path, err)
	}
}

// WaitForSelector waits for an element to be visible and returns its locator.
func WaitForSelector(t *testing.T, page playwright.Page, selector string) playwright.Locator {
	t.Helper()

	first := page.Locator(selector).First()
	err := first.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(browserMaxTimeoutMS),
	})
	if err != nil {
		title, _ := page.Title()
		t.Logf("Current URL: %s", page.URL())
		t.Logf("Current title: %s", title)
		t.Fatalf("Failed to wait for selector %s: %v", selector, err)
	}
	return first
}
