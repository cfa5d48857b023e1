package images

import "testing"

var webpClient = Client{OS: OSWeb, Accept: "image/webp,image/png,*/*"}
var legacyClient = Client{OS: OSWeb, Accept: "image/png,*/*"}

func TestProfileForWifiDefaults(t *testing.T) {
	t.Parallel()

	p := ProfileFor(ContextCard, NetworkWifi, 1, webpClient)
	if p.Width != 300 || p.Height != 300 {
		t.Fatalf("dimensions = %dx%d, want 300x300", p.Width, p.Height)
	}
	if p.Quality != 80 {
		t.Fatalf("Quality = %d, want 80", p.Quality)
	}
	if p.Format != FormatWebP {
		t.Fatalf("Format = %q, want webp (auto on wifi with support)", p.Format)
	}
}

func TestProfileForDPRisCapped(t *testing.T) {
	t.Parallel()

	extreme := ProfileFor(ContextCard, NetworkWifi, 10, webpClient)
	capped := ProfileFor(ContextCard, NetworkWifi, 2, webpClient)
	if extreme.Width != capped.Width || extreme.Height != capped.Height {
		t.Fatalf("dpr 10 gave %dx%d, dpr 2 gave %dx%d; cap not applied",
			extreme.Width, extreme.Height, capped.Width, capped.Height)
	}
	if capped.Width != 600 {
		t.Fatalf("Width at dpr 2 = %d, want 600", capped.Width)
	}
}

func TestProfileForNetworkScaling(t *testing.T) {
	t.Parallel()

	p := ProfileFor(ContextCard, Network3G, 1, webpClient)
	if p.Quality != 52 {
		t.Fatalf("Quality on 3g = %d, want 52 (80 * 0.65)", p.Quality)
	}
	if p.Width != 225 {
		t.Fatalf("Width on 3g = %d, want 225 (300 * 0.75)", p.Width)
	}
	// Quality must not scale with DPR: only dimensions do.
	p2 := ProfileFor(ContextCard, Network3G, 2, webpClient)
	if p2.Quality != p.Quality {
		t.Fatalf("Quality changed with DPR: %d vs %d", p2.Quality, p.Quality)
	}
	if p2.Width != 450 {
		t.Fatalf("Width on 3g at dpr 2 = %d, want 450", p2.Width)
	}
}

func TestProfileForFormatResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctx     Context
		network NetworkType
		client  Client
		want    Format
	}{
		{
			name:    "webp profile without support falls back to jpeg",
			ctx:     ContextThumbnail,
			network: NetworkWifi,
			client:  legacyClient,
			want:    FormatJPEG,
		},
		{
			name:    "webp profile with support stays webp",
			ctx:     ContextThumbnail,
			network: NetworkWifi,
			client:  webpClient,
			want:    FormatWebP,
		},
		{
			name:    "auto resolves to webp on wifi with support",
			ctx:     ContextCard,
			network: NetworkWifi,
			client:  webpClient,
			want:    FormatWebP,
		},
		{
			name:    "auto resolves to jpeg when network disables webp",
			ctx:     ContextCard,
			network: Network2G,
			client:  webpClient,
			want:    FormatJPEG,
		},
		{
			name:    "auto resolves to jpeg without client support",
			ctx:     ContextCard,
			network: NetworkWifi,
			client:  legacyClient,
			want:    FormatJPEG,
		},
		{
			name:    "png profile untouched",
			ctx:     ContextIcon,
			network: NetworkWifi,
			client:  webpClient,
			want:    FormatPNG,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ProfileFor(tt.ctx, tt.network, 1, tt.client)
			if p.Format != tt.want {
				t.Fatalf("Format = %q, want %q", p.Format, tt.want)
			}
		})
	}
}

func TestSupportsWebP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		client Client
		want   bool
	}{
		{name: "web with webp accept", client: Client{OS: OSWeb, Accept: "image/webp"}, want: true},
		{name: "web without webp accept", client: Client{OS: OSWeb, Accept: "image/png"}, want: false},
		{name: "ios 14", client: Client{OS: OSIOS, OSVersion: 14}, want: true},
		{name: "ios 13", client: Client{OS: OSIOS, OSVersion: 13}, want: false},
		{name: "android api 14", client: Client{OS: OSAndroid, OSVersion: 14}, want: true},
		{name: "android api 13", client: Client{OS: OSAndroid, OSVersion: 13}, want: false},
		{name: "unknown platform", client: Client{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.client.SupportsWebP(); got != tt.want {
				t.Fatalf("SupportsWebP() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseContextAndNetwork(t *testing.T) {
	t.Parallel()

	if _, ok := ParseContext("hero"); !ok {
		t.Fatalf("ParseContext(hero) should succeed")
	}
	if _, ok := ParseContext("poster"); ok {
		t.Fatalf("ParseContext(poster) should fail")
	}
	if n, ok := ParseNetwork(""); !ok || n != NetworkWifi {
		t.Fatalf("ParseNetwork(\"\") = %q/%v, want wifi default", n, ok)
	}
	if _, ok := ParseNetwork("5g"); ok {
		t.Fatalf("ParseNetwork(5g) should fail")
	}
}
