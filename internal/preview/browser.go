package preview

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultRenderTimeout bounds a sandbox render.
const DefaultRenderTimeout = 30 * time.Second

// RenderScreenshot loads the (already sanitized and patched) document in a
// headless browser and captures a full-page PNG. Requires Chrome/Chromium on
// the system; callers treat failure as preview-unavailable, never fatal.
func RenderScreenshot(ctx context.Context, html string, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var shot []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(html)),
		chromedp.WaitReady("body"),
		chromedp.FullScreenshot(&shot, 90),
	)
	if err != nil {
		return nil, fmt.Errorf("sandbox rendering failed: %w", err)
	}
	return shot, nil
}
