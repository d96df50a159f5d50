// Package browser opens salon websites in the user's default browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Open launches the default browser for the given address. Salon profiles
// often store bare hosts ("chezmarie.fr"), so a missing scheme defaults to
// https.
func Open(address string) error {
	address = normalize(address)
	if address == "" {
		return fmt.Errorf("empty address")
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", address).Start()
	case "linux":
		return exec.Command("xdg-open", address).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", address).Start()
	default:
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}

func normalize(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}
	if !strings.Contains(address, "://") {
		return "https://" + address
	}
	return address
}
