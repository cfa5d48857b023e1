// Package images turns a semantic image intent (a card thumbnail on a 3g
// connection for a 3x phone) into concrete delivery parameters and a
// provider-specific URL. It is pure string and arithmetic work; no network
// calls happen here.
package images

import "math"

// Context names the UI slot an image is destined for.
type Context string

const (
	ContextThumbnail Context = "thumbnail"
	ContextCard      Context = "card"
	ContextDetail    Context = "detail"
	ContextHero      Context = "hero"
	ContextAvatar    Context = "avatar"
	ContextIcon      Context = "icon"
	ContextBanner    Context = "banner"
	ContextGallery   Context = "gallery"
	ContextPreview   Context = "preview"
)

// Format is the delivery format written into provider URLs. FormatAuto defers
// the choice to the provider (or to WebP negotiation where the provider
// cannot choose).
type Format string

const (
	FormatWebP Format = "webp"
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatAuto Format = "auto"
)

// NetworkType classifies the client's connection.
type NetworkType string

const (
	NetworkWifi    NetworkType = "wifi"
	Network4G      NetworkType = "4g"
	Network3G      NetworkType = "3g"
	Network2G      NetworkType = "2g"
	NetworkUnknown NetworkType = "unknown"
)

// MaxDPR caps the device pixel ratio factor; pixel densities beyond 2x buy
// nothing visible and double the payload.
const MaxDPR = 2.0

// Profile describes delivery parameters for one context. Width or Height of
// zero means the dimension is unconstrained.
type Profile struct {
	Width   int
	Height  int
	Quality int
	Format  Format
}

var profiles = map[Context]Profile{
	ContextThumbnail: {Width: 150, Height: 150, Quality: 60, Format: FormatWebP},
	ContextCard:      {Width: 300, Height: 300, Quality: 80, Format: FormatAuto},
	ContextDetail:    {Width: 600, Height: 600, Quality: 85, Format: FormatAuto},
	ContextHero:      {Width: 1200, Height: 600, Quality: 90, Format: FormatAuto},
	ContextAvatar:    {Width: 100, Height: 100, Quality: 70, Format: FormatWebP},
	ContextIcon:      {Width: 48, Height: 48, Quality: 60, Format: FormatPNG},
	ContextBanner:    {Width: 1600, Height: 400, Quality: 85, Format: FormatAuto},
	ContextGallery:   {Width: 800, Height: 800, Quality: 85, Format: FormatAuto},
	ContextPreview:   {Width: 400, Height: 300, Quality: 50, Format: FormatJPEG},
}

// adjustment scales a base profile for one network class. Quality and size
// are each applied exactly once; they never compound.
type adjustment struct {
	QualityMultiplier float64
	SizeMultiplier    float64
	EnableWebP        bool
}

var adjustments = map[NetworkType]adjustment{
	NetworkWifi:    {QualityMultiplier: 1.0, SizeMultiplier: 1.0, EnableWebP: true},
	Network4G:      {QualityMultiplier: 0.85, SizeMultiplier: 1.0, EnableWebP: true},
	Network3G:      {QualityMultiplier: 0.65, SizeMultiplier: 0.75, EnableWebP: true},
	Network2G:      {QualityMultiplier: 0.4, SizeMultiplier: 0.5, EnableWebP: false},
	NetworkUnknown: {QualityMultiplier: 0.5, SizeMultiplier: 0.75, EnableWebP: false},
}

// ParseContext validates a context name from an untrusted source.
func ParseContext(s string) (Context, bool) {
	c := Context(s)
	_, ok := profiles[c]
	return c, ok
}

// ParseNetwork validates a network class name, defaulting empty to wifi.
func ParseNetwork(s string) (NetworkType, bool) {
	if s == "" {
		return NetworkWifi, true
	}
	n := NetworkType(s)
	_, ok := adjustments[n]
	return n, ok
}

// ProfileFor computes the delivery profile for a context under the given
// network class and device pixel ratio. Dimensions scale by the network size
// multiplier and the DPR (capped at MaxDPR); quality scales by the network
// quality multiplier only. The profile format resolves against the client:
// webp falls back to jpeg without client support, auto becomes webp only
// when the client supports it and the network class allows it.
func ProfileFor(ctx Context, net NetworkType, dpr float64, c Client) Profile {
	base, ok := profiles[ctx]
	if !ok {
		base = profiles[ContextCard]
	}
	adj, ok := adjustments[net]
	if !ok {
		adj = adjustments[NetworkWifi]
	}
	dpr = capDPR(dpr)

	p := Profile{
		Quality: int(math.Round(float64(base.Quality) * adj.QualityMultiplier)),
		Format:  resolveFormat(base.Format, adj, c),
	}
	if base.Width > 0 {
		p.Width = int(math.Round(float64(base.Width) * adj.SizeMultiplier * dpr))
	}
	if base.Height > 0 {
		p.Height = int(math.Round(float64(base.Height) * adj.SizeMultiplier * dpr))
	}
	return p
}

func resolveFormat(f Format, adj adjustment, c Client) Format {
	switch f {
	case FormatWebP:
		if !c.SupportsWebP() {
			return FormatJPEG
		}
		return FormatWebP
	case FormatAuto:
		if c.SupportsWebP() && adj.EnableWebP {
			return FormatWebP
		}
		return FormatJPEG
	default:
		return f
	}
}

func capDPR(dpr float64) float64 {
	if dpr <= 0 {
		return 1
	}
	return math.Min(dpr, MaxDPR)
}
