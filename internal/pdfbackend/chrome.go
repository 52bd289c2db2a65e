package pdfbackend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// chromeTimeout bounds a single print job, including Chrome startup
const chromeTimeout = 60 * time.Second

// A4 paper size in inches
const (
	a4WidthIn  = 8.27
	a4HeightIn = 11.69
)

// ChromeRenderer prints an HTML document to PDF through headless Chrome.
// The HTML rendition carries the full theme styling, so this engine
// produces output that matches the HTML format exactly.
type ChromeRenderer struct{}

// NewChromeRenderer returns a renderer backed by headless Chrome
func NewChromeRenderer() *ChromeRenderer {
	return &ChromeRenderer{}
}

// Render prints the HTML document to a PDF byte stream
func (r *ChromeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv(ChromePathEnvVar); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	printCtx, cancelPrint := context.WithTimeout(browserCtx, chromeTimeout)
	defer cancelPrint()

	// Chrome wants a file URL; serve the document from a temp directory
	tmpDir, err := os.MkdirTemp("", "resume-pdf-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		return nil, fmt.Errorf("failed to write temp HTML file: %w", err)
	}

	var pdfBuf []byte
	err = chromedp.Run(printCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthIn).
				WithPaperHeight(a4HeightIn).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chrome print failed: %w", err)
	}
	return pdfBuf, nil
}
