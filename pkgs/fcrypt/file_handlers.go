package fcrypt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"filippo.io/age"
	"github.com/google/renameio/v2"
)

// Ext is the suffix given to encrypted record files.
const Ext = ".age"

// EncryptInPlace replaces path with an armored, encrypted copy at
// path + ".age". The plain file is removed once the encrypted copy is
// durable on disk.
func EncryptInPlace(path string, recipient age.Recipient) (string, error) {
	outputPath := path + Ext
	err := transform(path, outputPath, func(r io.Reader, w io.Writer) error {
		return EncryptReader(r, w, recipient)
	})
	if err != nil {
		return "", err
	}

	return outputPath, os.Remove(path)
}

// DecryptInPlace replaces an encrypted file ending in .age with its plain
// content at the path without the suffix.
func DecryptInPlace(path string, identity age.Identity) (string, error) {
	if !strings.HasSuffix(path, Ext) {
		return "", fmt.Errorf("file %s does not have %s extension", path, Ext)
	}

	outputPath := strings.TrimSuffix(path, Ext)
	err := transform(path, outputPath, func(r io.Reader, w io.Writer) error {
		return DecryptReader(r, w, identity)
	})
	if err != nil {
		return "", err
	}

	return outputPath, os.Remove(path)
}

// transform streams inputPath through fn into outputPath. The output is
// written to a pending file and only renamed into place when fn succeeds.
func transform(inputPath, outputPath string, fn func(io.Reader, io.Writer) error) error {
	inputFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() {
		_ = inputFile.Close()
	}()

	pending, err := renameio.NewPendingFile(outputPath, renameio.WithPermissions(0o600))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	if err := fn(inputFile, pending); err != nil {
		return err
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", outputPath, err)
	}

	return nil
}
