package images

import (
	"net/http"
	"strconv"
	"strings"
)

// OS identifies the requesting runtime family.
type OS string

const (
	OSWeb     OS = "web"
	OSIOS     OS = "ios"
	OSAndroid OS = "android"
)

// minWebPVersion is the first iOS release and Android API level with native
// WebP decode.
const minWebPVersion = 14

// Client describes the requesting runtime: which platform family, which OS
// version (iOS release or Android API level), and for web clients the Accept
// header they sent. It is plain read-only data; callers own an instance per
// request rather than the package holding global state.
type Client struct {
	OS        OS
	OSVersion int
	Accept    string
}

// SupportsWebP reports whether the client can decode WebP. Web clients
// advertise it in the Accept header; native clients are judged by version.
// Anything unrecognized conservatively reports false.
func (c Client) SupportsWebP() bool {
	switch c.OS {
	case OSWeb:
		return strings.Contains(c.Accept, "image/webp")
	case OSIOS, OSAndroid:
		return c.OSVersion >= minWebPVersion
	default:
		return false
	}
}

// ClientFromRequest derives a Client from request headers and the optional
// os / os_version query parameters the mobile apps attach.
func ClientFromRequest(r *http.Request) Client {
	c := Client{OS: OSWeb, Accept: r.Header.Get("Accept")}
	switch strings.ToLower(r.URL.Query().Get("os")) {
	case "ios":
		c.OS = OSIOS
	case "android":
		c.OS = OSAndroid
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("os_version")); err == nil {
		c.OSVersion = v
	}
	return c
}
