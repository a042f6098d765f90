package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// SCOPE is the only scope requested: read/write access to spreadsheets.
const SCOPE = sheets.SpreadsheetsScope

var ErrInvalidKey = errors.New("invalid service account key")

// Issuer creates a token source from a service account key file and a set of scopes.
type Issuer func(ctx context.Context, key []byte, scopes ...string) (oauth2.TokenSource, error)

// Identity is an authenticated service account scoped for spreadsheet access.
type Identity struct {
	email     string
	projectID string
	scopes    []string
	tokens    oauth2.TokenSource
}

func NewIdentity(email string, tokens oauth2.TokenSource) *Identity {
	return &Identity{
		email:  email,
		scopes: []string{SCOPE},
		tokens: tokens,
	}
}

func (id *Identity) Email() string {
	return id.email
}

func (id *Identity) ProjectID() string {
	return id.projectID
}

func (id *Identity) Scopes() []string {
	return append([]string{}, id.scopes...)
}

func (id *Identity) TokenSource() oauth2.TokenSource {
	return id.tokens
}

func (id *Identity) String() string {
	return id.email
}

// Load resolves the descriptor and creates a JWT token source for the service account.
func Load(ctx context.Context, d Descriptor) (*Identity, error) {
	return LoadWith(ctx, d, issue)
}

// LoadWith is Load with a caller supplied token issuer.
func LoadWith(ctx context.Context, d Descriptor, issuer Issuer) (*Identity, error) {
	if d == nil {
		return nil, fmt.Errorf("%w (missing credentials)", ErrInvalidKey)
	}

	key, err := d.resolve()
	if err != nil {
		return nil, err
	}

	if err := validate(key); err != nil {
		return nil, err
	}

	if key.Type == "" {
		key.Type = serviceAccount
	}

	b, err := json.Marshal(key)
	if err != nil {
		return nil, err
	}

	tokens, err := issuer(ctx, b, SCOPE)
	if err != nil {
		return nil, fmt.Errorf("unable to create token source for %v (%w)", key.ClientEmail, err)
	}

	return &Identity{
		email:     key.ClientEmail,
		projectID: key.ProjectID,
		scopes:    []string{SCOPE},
		tokens:    tokens,
	}, nil
}

func validate(key *ServiceAccountKey) error {
	if key.Type != "" && key.Type != serviceAccount {
		return fmt.Errorf("%w ('type' is '%v', expected '%v')", ErrInvalidKey, key.Type, serviceAccount)
	}

	required := []struct {
		field string
		value string
	}{
		{"client_email", key.ClientEmail},
		{"private_key", key.PrivateKey},
		{"private_key_id", key.PrivateKeyID},
		{"token_uri", key.TokenURI},
		{"client_id", key.ClientID},
	}

	missing := []string{}
	for _, v := range required {
		if strings.TrimSpace(v.value) == "" {
			missing = append(missing, v.field)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w (missing %v)", ErrInvalidKey, strings.Join(missing, ", "))
	}

	return nil
}

func issue(ctx context.Context, key []byte, scopes ...string) (oauth2.TokenSource, error) {
	config, err := google.JWTConfigFromJSON(key, scopes...)
	if err != nil {
		return nil, err
	}

	return config.TokenSource(ctx), nil
}
