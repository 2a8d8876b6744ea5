package classify

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig trusts a private CA or presents a client certificate when the
// backend sits behind TLS.
type TLSConfig struct {
	CAFile             string `yaml:"ca_file,omitempty"`
	CertFile           string `yaml:"cert_file,omitempty"`
	KeyFile            string `yaml:"key_file,omitempty"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify,omitempty"`
}

// IsZero reports whether no TLS setting is present.
func (c TLSConfig) IsZero() bool {
	return c.CAFile == "" && c.CertFile == "" && c.KeyFile == "" && !c.InsecureSkipVerify
}

func (c TLSConfig) build() (*tls.Config, error) {
	if c.IsZero() {
		return nil, nil
	}
	if (c.CertFile == "") != (c.KeyFile == "") {
		return nil, fmt.Errorf("cert_file and key_file must be set together")
	}

	out := &tls.Config{InsecureSkipVerify: c.InsecureSkipVerify}

	if c.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("loading client cert: %w", err)
		}
		out.Certificates = []tls.Certificate{cert}
	}

	if c.CAFile != "" {
		pem, err := os.ReadFile(c.CAFile)
		if err != nil {
			return nil, fmt.Errorf("reading CA cert: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", c.CAFile)
		}
		out.RootCAs = pool
	}

	return out, nil
}
