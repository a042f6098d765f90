package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Descriptor identifies where to find the service account key. It is either a key file
// (FromFile) or an inline key (FromKey, FromMap, FromJSON) and is resolved when the
// identity is loaded.
type Descriptor interface {
	resolve() (*ServiceAccountKey, error)
	String() string
}

// ServiceAccountKey is the Google service account key file schema.
type ServiceAccountKey struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id,omitempty"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri,omitempty"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url,omitempty"`
	ClientX509CertURL       string `json:"client_x509_cert_url,omitempty"`
	UniverseDomain          string `json:"universe_domain,omitempty"`
}

const serviceAccount = "service_account"

type file struct {
	path string
}

type inline struct {
	key ServiceAccountKey
	err error
}

func FromFile(path string) Descriptor {
	return file{path: path}
}

func FromKey(key ServiceAccountKey) Descriptor {
	return inline{key: key}
}

// FromMap creates an inline descriptor from the key/value pairs of a service account key,
// using the same field names as the JSON key file e.g. "client_email", "private_key".
func FromMap(m map[string]string) Descriptor {
	b, err := json.Marshal(m)
	if err != nil {
		return inline{err: err}
	}

	return FromJSON(b)
}

// FromJSON creates an inline descriptor from the contents of a service account key file.
func FromJSON(b []byte) Descriptor {
	key := ServiceAccountKey{}
	if err := json.Unmarshal(b, &key); err != nil {
		return inline{err: fmt.Errorf("%w (%v)", ErrInvalidKey, err)}
	}

	return inline{key: key}
}

func (f file) resolve() (*ServiceAccountKey, error) {
	if strings.TrimSpace(f.path) == "" {
		return nil, fmt.Errorf("%w (missing key file path)", ErrInvalidKey)
	}

	bytes, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account key file (%w)", err)
	}

	key := ServiceAccountKey{}
	if err := json.Unmarshal(bytes, &key); err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrInvalidKey, err)
	}

	return &key, nil
}

func (f file) String() string {
	return f.path
}

func (i inline) resolve() (*ServiceAccountKey, error) {
	if i.err != nil {
		return nil, i.err
	}

	key := i.key

	return &key, nil
}

func (i inline) String() string {
	if i.key.ClientEmail != "" {
		return fmt.Sprintf("<inline:%v>", i.key.ClientEmail)
	}

	return "<inline>"
}
