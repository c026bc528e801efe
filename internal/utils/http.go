package utils

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/eduteams/eduteams-cli/internal/config"
	"github.com/eduteams/eduteams-cli/internal/version"
)

var ErrNoCertificates = errors.New("no PEM certificates found")

type UserAgentTransport struct {
	rt http.RoundTripper
}

func NewUserAgentTransport(rt http.RoundTripper) *UserAgentTransport {
	if rt == nil {
		rt = http.DefaultTransport
	}

	return &UserAgentTransport{rt}
}

func (adt *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "eduteams-cli/"+version.Version)

	return adt.rt.RoundTrip(req) //nolint: wrapcheck
}

// NewHTTPClient returns the client used for all requests against the provider.
// Certificates of conf.CAFile are trusted in addition to the system pool.
func NewHTTPClient(conf config.HTTP) (*http.Client, error) {
	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, errors.New("unexpected type of http.DefaultTransport")
	}

	transport = transport.Clone()

	if conf.CAFile != "" {
		rootCAs, err := loadCertPool(conf.CAFile)
		if err != nil {
			return nil, err
		}

		transport.TLSClientConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
			RootCAs:    rootCAs,
		}
	}

	return &http.Client{
		Timeout:   conf.Timeout,
		Transport: NewUserAgentTransport(transport),
	}, nil
}

func loadCertPool(caFile string) (*x509.CertPool, error) {
	pemCerts, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("error reading http.ca-file: %w", err)
	}

	rootCAs, err := x509.SystemCertPool()
	if err != nil || rootCAs == nil {
		rootCAs = x509.NewCertPool()
	}

	if !rootCAs.AppendCertsFromPEM(pemCerts) {
		return nil, fmt.Errorf("http.ca-file %s: %w", caFile, ErrNoCertificates)
	}

	return rootCAs, nil
}
