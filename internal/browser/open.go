// Package browser hands paths and URLs to the desktop environment.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open opens target, a URL or a file path such as an exported report, with
// the OS default handler. The handler is started and not waited on.
func Open(target string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", target).Start()
	case "linux":
		return exec.Command("xdg-open", target).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target).Start()
	default:
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
