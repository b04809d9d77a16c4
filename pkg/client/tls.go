package client

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/lanl/halo/pkg/config"
)

// clientCredentials builds the transport credentials for manager→agent
// connections. mTLS is on exactly when the HALO_CLIENT_CERT / HALO_CLIENT_KEY
// environment is present; otherwise the channel is plaintext, which is only
// appropriate for the test environment's loopback network.
func clientCredentials() (credentials.TransportCredentials, error) {
	certPath, keyPath := config.ClientCert(), config.ClientKey()
	if certPath == "" || keyPath == "" {
		return insecure.NewCredentials(), nil
	}

	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, fmt.Errorf("could not load client certificate: %w", err)
	}

	pool, err := caPool()
	if err != nil {
		return nil, err
	}

	return credentials.NewTLS(&tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS13,
	}), nil
}

// ServerCredentials builds the transport credentials for the remote agent's
// listener, mirroring clientCredentials: mTLS when HALO_SERVER_CERT /
// HALO_SERVER_KEY are present, plaintext otherwise.
func ServerCredentials() (credentials.TransportCredentials, error) {
	certPath, keyPath := config.ServerCert(), config.ServerKey()
	if certPath == "" || keyPath == "" {
		return insecure.NewCredentials(), nil
	}

	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, fmt.Errorf("could not load server certificate: %w", err)
	}

	pool, err := caPool()
	if err != nil {
		return nil, err
	}

	return credentials.NewTLS(&tls.Config{
		Certificates: []tls.Certificate{cert},
		ClientCAs:    pool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS13,
	}), nil
}

func caPool() (*x509.CertPool, error) {
	caPath := config.CACert()
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, fmt.Errorf("could not read CA certificate %q: %w", caPath, err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no usable certificates in %q", caPath)
	}
	return pool, nil
}
