// Package fcrypt encrypts and decrypts record files with age. Encrypted
// output is ASCII armored so it can be committed next to the plain sources.
package fcrypt

import (
	"fmt"
	"io"

	"filippo.io/age"
	"filippo.io/age/armor"
)

// EncryptReader encrypts data from r for the recipient and writes the armored
// result to w.
func EncryptReader(r io.Reader, w io.Writer, recipient age.Recipient) error {
	armorWriter := armor.NewWriter(w)

	encryptor, err := age.Encrypt(armorWriter, recipient)
	if err != nil {
		_ = armorWriter.Close()
		return fmt.Errorf("failed to create encryptor: %w", err)
	}

	if _, err := io.Copy(encryptor, r); err != nil {
		_ = encryptor.Close()
		_ = armorWriter.Close()
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	// Close in reverse order so the age trailer lands inside the armor.
	if err := encryptor.Close(); err != nil {
		_ = armorWriter.Close()
		return fmt.Errorf("failed to finalize encryption: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return fmt.Errorf("failed to finalize armor: %w", err)
	}

	return nil
}

// DecryptReader decrypts armored data from r with the identity and writes the
// plain result to w.
func DecryptReader(r io.Reader, w io.Writer, identity age.Identity) error {
	decryptor, err := age.Decrypt(armor.NewReader(r), identity)
	if err != nil {
		return fmt.Errorf("failed to create decryptor: %w", err)
	}

	if _, err := io.Copy(w, decryptor); err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	return nil
}
