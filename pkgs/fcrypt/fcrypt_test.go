package fcrypt

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"filippo.io/age"
)

const recordLiteral = `content:
  - ./templates/**/*.html
theme:
  extend:
    colors:
      brand:
        DEFAULT: "#10b981"
`

func TestEncryptReader_RoundTrip(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("failed to generate identity: %v", err)
	}

	var encrypted bytes.Buffer
	if err := EncryptReader(bytes.NewBufferString(recordLiteral), &encrypted, identity.Recipient()); err != nil {
		t.Fatalf("EncryptReader() error = %v", err)
	}

	if !bytes.HasPrefix(encrypted.Bytes(), []byte("-----BEGIN AGE ENCRYPTED FILE-----")) {
		t.Errorf("encrypted output is not armored: %q", encrypted.String()[:32])
	}

	var decrypted bytes.Buffer
	if err := DecryptReader(&encrypted, &decrypted, identity); err != nil {
		t.Fatalf("DecryptReader() error = %v", err)
	}

	if decrypted.String() != recordLiteral {
		t.Errorf("decrypted = %q, want %q", decrypted.String(), recordLiteral)
	}
}

func TestDecryptReader_WrongIdentity(t *testing.T) {
	owner, _ := age.GenerateX25519Identity()
	other, _ := age.GenerateX25519Identity()

	var encrypted bytes.Buffer
	if err := EncryptReader(bytes.NewBufferString(recordLiteral), &encrypted, owner.Recipient()); err != nil {
		t.Fatalf("EncryptReader() error = %v", err)
	}

	var decrypted bytes.Buffer
	if err := DecryptReader(&encrypted, &decrypted, other); err == nil {
		t.Error("DecryptReader() with the wrong identity succeeded")
	}
}

func TestInPlace_RoundTrip(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("failed to generate identity: %v", err)
	}

	dir := t.TempDir()
	plain := filepath.Join(dir, "themecfg.yml")
	if err := os.WriteFile(plain, []byte(recordLiteral), 0o644); err != nil {
		t.Fatalf("failed to write record: %v", err)
	}

	encPath, err := EncryptInPlace(plain, identity.Recipient())
	if err != nil {
		t.Fatalf("EncryptInPlace() error = %v", err)
	}
	if encPath != plain+Ext {
		t.Errorf("EncryptInPlace() path = %s, want %s", encPath, plain+Ext)
	}
	if _, err := os.Stat(plain); !os.IsNotExist(err) {
		t.Error("plain file still exists after encryption")
	}

	decPath, err := DecryptInPlace(encPath, identity)
	if err != nil {
		t.Fatalf("DecryptInPlace() error = %v", err)
	}
	if decPath != plain {
		t.Errorf("DecryptInPlace() path = %s, want %s", decPath, plain)
	}

	got, err := os.ReadFile(plain)
	if err != nil {
		t.Fatalf("failed to read decrypted record: %v", err)
	}
	if string(got) != recordLiteral {
		t.Errorf("decrypted file = %q, want original literal", got)
	}

	if _, err := os.Stat(encPath); !os.IsNotExist(err) {
		t.Error("encrypted file still exists after decryption")
	}
}

func TestDecryptInPlace_RequiresExtension(t *testing.T) {
	identity, _ := age.GenerateX25519Identity()
	if _, err := DecryptInPlace("themecfg.yml", identity); err == nil {
		t.Error("DecryptInPlace() accepted a path without the .age suffix")
	}
}

func TestReadIdentityFile(t *testing.T) {
	identity, _ := age.GenerateX25519Identity()

	path := filepath.Join(t.TempDir(), "key.txt")
	content := "# created: 2026-10-19\n# public key: " + identity.Recipient().String() + "\n" + identity.String() + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write identity: %v", err)
	}

	got, err := ReadIdentityFile(path)
	if err != nil {
		t.Fatalf("ReadIdentityFile() error = %v", err)
	}

	x, ok := got.(*age.X25519Identity)
	if !ok || x.String() != identity.String() {
		t.Errorf("ReadIdentityFile() = %v, want the generated identity", got)
	}

	if _, err := ReadIdentityFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("ReadIdentityFile() on a missing file succeeded")
	}
}

func TestLoadPrivateKey(t *testing.T) {
	identity, _ := age.GenerateX25519Identity()

	got, err := LoadPrivateKey(identity.String())
	if err != nil {
		t.Fatalf("LoadPrivateKey() error = %v", err)
	}
	if got.String() != identity.String() {
		t.Errorf("LoadPrivateKey() = %s, want the generated identity", got)
	}

	if _, err := LoadPrivateKey("AGE-SECRET-KEY-NOTAKEY"); err == nil {
		t.Error("LoadPrivateKey() accepted a malformed key")
	}
}
