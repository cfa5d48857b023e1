// payloadcheck fetches live catalog endpoints and reports how many of their
// records survive normalization. It exists to catch backend shape drift
// before users see empty shelves.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"cashcart/internal/catalog"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/sync/errgroup"
)

type report struct {
	URL      string
	Total    int
	Accepted int
}

func (r report) rejectRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Total-r.Accepted) / float64(r.Total)
}

func main() {
	var urlsCSV string
	var kind string
	var maxRejectRate float64
	var timeout time.Duration

	flag.StringVar(&urlsCSV, "urls", "", "Comma-separated catalog endpoint URLs to check")
	flag.StringVar(&kind, "kind", "products", "Payload kind: products or stores")
	flag.Float64Var(&maxRejectRate, "max-reject-rate", 0.1, "Fail when the rejected fraction exceeds this")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Overall deadline for all fetches")
	flag.Parse()

	urls := parseURLList(urlsCSV)
	if len(urls) == 0 {
		log.Fatalf("missing required -urls flag")
	}
	if kind != "products" && kind != "stores" {
		log.Fatalf("unknown -kind %q (want products or stores)", kind)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	reports, err := checkEndpoints(ctx, urls, kind)
	if err != nil {
		log.Fatalf("payload check failed: %v", err)
	}

	failed := false
	for _, r := range reports {
		status := "ok"
		if r.rejectRate() > maxRejectRate {
			status = "FAIL"
			failed = true
		}
		fmt.Printf("%s %s: %d/%d records normalized (%.1f%% rejected)\n",
			status, r.URL, r.Accepted, r.Total, r.rejectRate()*100)
	}
	if failed {
		os.Exit(1)
	}
}

func parseURLList(csv string) []string {
	parts := strings.Split(csv, ",")
	urls := make([]string, 0, len(parts))
	for _, part := range parts {
		if u := strings.TrimSpace(part); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func checkEndpoints(ctx context.Context, urls []string, kind string) ([]report, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil
	httpClient := client.StandardClient()

	var mu sync.Mutex
	reports := make([]report, 0, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	for _, u := range urls {
		u := u
		g.Go(func() error {
			r, err := checkEndpoint(ctx, httpClient, u, kind)
			if err != nil {
				return fmt.Errorf("check %s: %w", u, err)
			}
			mu.Lock()
			reports = append(reports, r)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func checkEndpoint(ctx context.Context, client *http.Client, url, kind string) (report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return report{}, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return report{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return report{}, fmt.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return report{}, fmt.Errorf("read body: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return report{}, fmt.Errorf("payload is not a JSON array: %w", err)
	}

	r := report{URL: url, Total: len(items)}
	for _, item := range items {
		switch kind {
		case "products":
			if catalog.NormalizeProduct(item) != nil {
				r.Accepted++
			}
		case "stores":
			if catalog.NormalizeStore(item) != nil {
				r.Accepted++
			}
		}
	}
	return r, nil
}
