package relay

// Message types exchanged with embedded dashboard documents. Outbound
// messages hand the token over; inbound ones ask the host to perform a
// top-level navigation on the frame's behalf.
const (
	TypeAuth       = "arcgis-auth"
	TypeSetToken   = "arcgis-set-token"
	TypeLinkClick  = "link-click"
	TypeNavigation = "navigation"
)

// Message is the cross-frame payload. Token and PortalURL are set on
// outbound auth messages, URL on inbound navigation requests.
type Message struct {
	Type      string `json:"type"`
	Token     string `json:"token,omitempty"`
	PortalURL string `json:"portalUrl,omitempty"`
	URL       string `json:"url,omitempty"`
}
