package images

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Options selects delivery parameters for OptimizedURL. Context chooses the
// base profile; Network and DPR adapt it; Width, Height, Quality, and Format
// override the computed values when set (non-zero / non-empty).
type Options struct {
	Context Context
	Network NetworkType
	DPR     float64
	Client  Client
	Width   int
	Height  int
	Quality int
	Format  Format
}

// resolved holds the final parameters written into a provider URL. Format
// here may still be auto: Cloudinary and Imgix can negotiate the format
// themselves, so auto is only forced to a concrete format for providers
// that cannot.
type resolved struct {
	Width      int
	Height     int
	Quality    int
	Format     Format
	DPR        float64
	EnableWebP bool
}

func (o Options) resolve() resolved {
	base, ok := profiles[o.Context]
	if !ok {
		base = profiles[ContextCard]
	}
	adj, ok := adjustments[o.Network]
	if !ok {
		adj = adjustments[NetworkWifi]
	}
	dpr := capDPR(o.DPR)

	r := resolved{
		Quality:    int(math.Round(float64(base.Quality) * adj.QualityMultiplier)),
		Format:     base.Format,
		DPR:        dpr,
		EnableWebP: adj.EnableWebP,
	}
	if base.Width > 0 {
		r.Width = int(math.Round(float64(base.Width) * adj.SizeMultiplier * dpr))
	}
	if base.Height > 0 {
		r.Height = int(math.Round(float64(base.Height) * adj.SizeMultiplier * dpr))
	}

	if o.Width > 0 {
		r.Width = o.Width
	}
	if o.Height > 0 {
		r.Height = o.Height
	}
	if o.Quality > 0 {
		r.Quality = o.Quality
	}
	if o.Format != "" {
		r.Format = o.Format
	}
	// A webp profile on a client that cannot decode it falls back to jpeg;
	// auto stays auto for providers able to negotiate themselves.
	if r.Format == FormatWebP && !o.Client.SupportsWebP() {
		r.Format = FormatJPEG
	}
	return r
}

// OptimizedURL rewrites a raw image URL into the provider's transformation
// syntax. Cloudinary URLs gain a transformation segment after /upload/,
// Imgix URLs gain rendering query parameters, and anything else gets a
// best-effort generic query string the receiving service may ignore.
// The error is non-nil only when the URL itself does not parse.
func OptimizedURL(rawURL string, opts Options) (string, error) {
	r := opts.resolve()
	switch {
	case strings.Contains(rawURL, "cloudinary.com"):
		return cloudinaryURL(rawURL, r), nil
	case strings.Contains(rawURL, "imgix.net"):
		return imgixURL(rawURL, r)
	default:
		return genericURL(rawURL, r, opts.Client)
	}
}

// cloudinaryURL inserts a transformation segment immediately after /upload/.
// URLs without an upload segment pass through untouched.
func cloudinaryURL(rawURL string, r resolved) string {
	const marker = "/upload/"
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return rawURL
	}

	parts := []string{fmt.Sprintf("q_%d", r.Quality)}
	if r.Width > 0 {
		parts = append(parts, fmt.Sprintf("w_%d", r.Width))
	}
	if r.Height > 0 {
		parts = append(parts, fmt.Sprintf("h_%d", r.Height))
	}
	parts = append(parts,
		"dpr_"+formatDPR(r.DPR),
		lo.Ternary(r.Format == FormatAuto, "f_auto", "f_"+string(r.Format)),
		"c_fill",
		"g_auto",
	)

	insert := idx + len(marker)
	return rawURL[:insert] + strings.Join(parts, ",") + "/" + rawURL[insert:]
}

// imgixURL sets Imgix rendering parameters; auto format maps onto Imgix's
// own auto=format,compress negotiation.
func imgixURL(rawURL string, r resolved) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse imgix url: %w", err)
	}
	q := u.Query()
	if r.Width > 0 {
		q.Set("w", strconv.Itoa(r.Width))
	}
	if r.Height > 0 {
		q.Set("h", strconv.Itoa(r.Height))
	}
	q.Set("q", strconv.Itoa(r.Quality))
	if r.Format == FormatAuto {
		q.Set("auto", "format,compress")
	} else {
		q.Set("fm", string(r.Format))
	}
	q.Set("dpr", formatDPR(r.DPR))
	q.Set("fit", "crop")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// genericURL appends plain query parameters. Unknown hosts cannot negotiate
// auto, so the format resolves against the client before being written.
func genericURL(rawURL string, r resolved, c Client) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse image url: %w", err)
	}
	format := r.Format
	if format == FormatAuto || format == "" {
		format = lo.Ternary(c.SupportsWebP() && r.EnableWebP, FormatWebP, FormatJPEG)
	}
	q := u.Query()
	if r.Width > 0 {
		q.Set("w", strconv.Itoa(r.Width))
	}
	if r.Height > 0 {
		q.Set("h", strconv.Itoa(r.Height))
	}
	q.Set("q", strconv.Itoa(r.Quality))
	q.Set("fm", string(format))
	q.Set("dpr", formatDPR(r.DPR))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// defaultSrcSetSizes are the densities web image tags usually want.
var defaultSrcSetSizes = []float64{1, 1.5, 2}

// SrcSet builds an HTML srcset attribute value, one entry per density
// multiplier, each rewritten through OptimizedURL with that multiplier as
// the DPR. Only web clients get a srcset; everyone else gets "".
func SrcSet(baseURL string, ctx Context, sizes []float64, c Client) (string, error) {
	if c.OS != OSWeb {
		return "", nil
	}
	if len(sizes) == 0 {
		sizes = defaultSrcSetSizes
	}
	entries := make([]string, 0, len(sizes))
	for _, size := range sizes {
		u, err := OptimizedURL(baseURL, Options{Context: ctx, Network: NetworkWifi, DPR: size, Client: c})
		if err != nil {
			return "", fmt.Errorf("srcset entry for %sx: %w", formatDPR(size), err)
		}
		entries = append(entries, u+" "+formatDPR(size)+"x")
	}
	return strings.Join(entries, ", "), nil
}

// formatDPR renders 1 as "1" and 1.5 as "1.5".
func formatDPR(dpr float64) string {
	return strconv.FormatFloat(dpr, 'f', -1, 64)
}
