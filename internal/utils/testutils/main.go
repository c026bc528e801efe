package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/nettest"
)

const (
	ClientID   = "APP-12345-56789"
	DeviceCode = "D1"
	UserCode   = "U1"

	// DeviceAuthorizationResponse is the device authorization response of the mocked provider.
	DeviceAuthorizationResponse = `{
		"device_code": "D1",
		"user_code": "U1",
		"expire_in": 600,
		"interval": 5,
		"verification_uri": "https://x/device",
		"verification_uri_complete": "https://x/device?code=U1"
	}`
)

// TokenResponse is a canned response of the token endpoint of the mocked provider.
type TokenResponse struct {
	Status int
	Body   string
}

// TokenError returns a RFC 8628 error response with the given error code.
func TokenError(code string) TokenResponse {
	return TokenResponse{Status: http.StatusBadRequest, Body: `{"error":"` + code + `"}`}
}

// TokenSuccess returns a successful token response with the given body.
func TokenSuccess(body string) TokenResponse {
	return TokenResponse{Status: http.StatusOK, Body: body}
}

// Provider is a mocked OpenID Connect provider supporting the device authorization grant.
type Provider struct {
	*httptest.Server

	Issuer string

	mu             sync.Mutex
	discovery      map[string]any
	deviceResponse TokenResponse
	tokenResponses []TokenResponse
	deviceRequests []url.Values
	tokenRequests  []url.Values
}

// NewProvider starts a mocked provider on a local listener.
// The provider answers the device authorization request with [DeviceAuthorizationResponse]
// and every token request with an internal server error until [Provider.SetTokenResponses] is called.
func NewProvider(tb testing.TB) *Provider {
	tb.Helper()

	listener, err := nettest.NewLocalListener("tcp")
	require.NoError(tb, err)

	provider := &Provider{
		deviceResponse: TokenResponse{Status: http.StatusOK, Body: DeviceAuthorizationResponse},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /.well-known/openid-configuration", provider.handleDiscovery)
	mux.HandleFunc("POST /device", provider.handleDevice)
	mux.HandleFunc("POST /token", provider.handleToken)

	provider.Server = httptest.NewUnstartedServer(mux)
	require.NoError(tb, provider.Server.Listener.Close())

	provider.Server.Listener = listener
	provider.Server.Start()

	tb.Cleanup(provider.Server.Close)

	provider.Issuer = provider.Server.URL
	provider.discovery = map[string]any{
		"issuer":                        provider.Issuer,
		"device_authorization_endpoint": provider.Issuer + "/device",
		"token_endpoint":                provider.Issuer + "/token",
		"grant_types_supported":         []string{"urn:ietf:params:oauth:grant-type:device_code"},
	}

	return provider
}

// SetDiscovery sets a member of the discovery document. A nil value removes the member.
func (p *Provider) SetDiscovery(key string, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if value == nil {
		delete(p.discovery, key)

		return
	}

	p.discovery[key] = value
}

// SetDeviceResponse replaces the response of the device authorization endpoint.
func (p *Provider) SetDeviceResponse(status int, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.deviceResponse = TokenResponse{Status: status, Body: body}
}

// SetTokenResponses queues the responses of the token endpoint. Each request consumes one response.
func (p *Provider) SetTokenResponses(responses ...TokenResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tokenResponses = responses
}

// DeviceRequests returns the form parameters of all device authorization requests.
func (p *Provider) DeviceRequests() []url.Values {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]url.Values(nil), p.deviceRequests...)
}

// TokenRequests returns the form parameters of all token requests.
func (p *Provider) TokenRequests() []url.Values {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]url.Values(nil), p.tokenRequests...)
}

func (p *Provider) handleDiscovery(w http.ResponseWriter, _ *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p.discovery)
}

func (p *Provider) handleDevice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.deviceRequests = append(p.deviceRequests, r.PostForm)

	writeResponse(w, p.deviceResponse)
}

func (p *Provider) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.tokenRequests = append(p.tokenRequests, r.PostForm)

	if len(p.tokenResponses) == 0 {
		writeResponse(w, TokenResponse{Status: http.StatusInternalServerError, Body: `{"error":"server_error"}`})

		return
	}

	response := p.tokenResponses[0]
	p.tokenResponses = p.tokenResponses[1:]

	writeResponse(w, response)
}

func writeResponse(w http.ResponseWriter, response TokenResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.Status)
	_, _ = w.Write([]byte(response.Body))
}
