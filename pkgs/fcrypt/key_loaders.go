package fcrypt

import (
	"fmt"
	"os"

	"filippo.io/age"
)

func LoadPublicKey(key string) (*age.X25519Recipient, error) {
	ageRecipient, err := age.ParseX25519Recipient(key)
	if err != nil {
		return nil, fmt.Errorf("error parsing age public key='%s': %w", key, err)
	}

	return ageRecipient, nil
}

func LoadPrivateKey(key string) (*age.X25519Identity, error) {
	ageIdentity, err := age.ParseX25519Identity(key)
	if err != nil {
		return nil, fmt.Errorf("error parsing age private key: %w", err)
	}

	return ageIdentity, nil
}

// ReadIdentityFile returns the first identity in an age key file, as written
// by age-keygen. Comment and blank lines are skipped.
func ReadIdentityFile(path string) (age.Identity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity file %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	identities, err := age.ParseIdentities(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse identity file %s: %w", path, err)
	}

	return identities[0], nil
}
