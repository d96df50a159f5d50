package session

import (
	"crypto/sha256"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/hkdf"
)

// machineIDFiles are probed in order for a stable per-machine identifier.
var machineIDFiles = []string{
	"/etc/machine-id",
	"/var/lib/dbus/machine-id",
}

// machineFingerprint returns a stable identifier for this machine. Falls
// back to the hostname when no machine-id file is readable, which keeps the
// store working at the cost of a weaker key.
func machineFingerprint() string {
	for _, path := range machineIDFiles {
		if data, err := os.ReadFile(path); err == nil {
			if id := strings.TrimSpace(string(data)); id != "" {
				return id
			}
		}
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return "host:" + host
	}
	return "velour-fallback"
}

// derivedKey expands the machine fingerprint (salted with the store dir, so
// two stores on one machine never share a key) into a 32-byte AES key via
// HKDF-SHA256.
func derivedKey(dir string) ([]byte, error) {
	ikm := []byte(machineFingerprint() + "|" + dir)
	h := hkdf.New(sha256.New, ikm, nil, []byte("velour-session-store"))
	key := make([]byte, 32)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	return key, nil
}
