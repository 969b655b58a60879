// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package secrets

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// GenerateType enumerates the kinds of generated secrets.
type GenerateType string

const (
	// GeneratePassword generates a random password.
	GeneratePassword GenerateType = "password"
	// GenerateGafaelfawrToken generates a Gafaelfawr service token.
	GenerateGafaelfawrToken GenerateType = "gafaelfawr-token"
	// GenerateFernetKey generates a Fernet encryption key.
	GenerateFernetKey GenerateType = "fernet-key"
	// GenerateRSAPrivateKey generates a PEM-encoded RSA private key.
	GenerateRSAPrivateKey GenerateType = "rsa-private-key"
	// GenerateBcryptPasswordHash hashes the source secret with bcrypt.
	GenerateBcryptPasswordHash GenerateType = "bcrypt-password-hash"
	// GenerateMtime records the current time, for charts that expect a
	// modification timestamp alongside another secret.
	GenerateMtime GenerateType = "mtime"
)

// bcryptCost is the bcrypt work factor for generated password hashes.
const bcryptCost = 15

// GenerateRules says how a secret's value should be generated.
type GenerateRules struct {
	// Condition gates the rule on a chart setting; see Config.Condition.
	Condition string `yaml:"if,omitempty"`

	// Type is the kind of secret to generate.
	Type GenerateType `yaml:"type"`

	// Source is the key of the secret this secret is derived from. It is
	// required by the bcrypt-password-hash and mtime types and forbidden for
	// the others.
	Source string `yaml:"source,omitempty"`
}

func (r *GenerateRules) validate() error {
	switch r.Type {
	case GeneratePassword, GenerateGafaelfawrToken, GenerateFernetKey, GenerateRSAPrivateKey:
		if r.Source != "" {
			return errors.Errorf("generate type %q does not take a source", r.Type)
		}
	case GenerateBcryptPasswordHash, GenerateMtime:
		if r.Source == "" {
			return errors.Errorf("generate type %q requires a source", r.Type)
		}
	default:
		return errors.Errorf("unknown generate type %q", r.Type)
	}
	return nil
}

// NeedsSource reports whether the rule derives its value from another
// secret.
func (r *GenerateRules) NeedsSource() bool {
	return r.Type == GenerateBcryptPasswordHash || r.Type == GenerateMtime
}

// Generate produces a new value for a rule that needs no source secret.
func (r *GenerateRules) Generate() (string, error) {
	switch r.Type {
	case GeneratePassword:
		raw, err := randomBytes(32)
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(raw), nil
	case GenerateGafaelfawrToken:
		key, err := randomBytes(16)
		if err != nil {
			return "", err
		}
		secret, err := randomBytes(16)
		if err != nil {
			return "", err
		}
		return "gt-" + base64.RawURLEncoding.EncodeToString(key) +
			"." + base64.RawURLEncoding.EncodeToString(secret), nil
	case GenerateFernetKey:
		raw, err := randomBytes(32)
		if err != nil {
			return "", err
		}
		return base64.URLEncoding.EncodeToString(raw), nil
	case GenerateRSAPrivateKey:
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			return "", errors.Wrap(err, "generating RSA key")
		}
		der, err := x509.MarshalPKCS8PrivateKey(key)
		if err != nil {
			return "", errors.Wrap(err, "encoding RSA key")
		}
		return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})), nil
	default:
		return "", errors.Errorf("generate type %q requires a source secret", r.Type)
	}
}

// GenerateFromSource produces a new value derived from the value of the
// rule's source secret.
func (r *GenerateRules) GenerateFromSource(source string) (string, error) {
	switch r.Type {
	case GenerateBcryptPasswordHash:
		hash, err := bcrypt.GenerateFromPassword([]byte(source), bcryptCost)
		if err != nil {
			return "", errors.Wrap(err, "hashing password")
		}
		return string(hash), nil
	case GenerateMtime:
		return time.Now().UTC().Format("2006-01-02T15:04:05Z"), nil
	default:
		return "", errors.Errorf("generate type %q does not take a source secret", r.Type)
	}
}

func randomBytes(n int) ([]byte, error) {
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return nil, errors.Wrap(err, "reading random bytes")
	}
	return raw, nil
}
