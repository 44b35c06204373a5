// Package browser opens pages of the dashboard in the user's browser.
package browser

import (
	"fmt"
	"net"
	"os/exec"
	"runtime"
	"strconv"
)

// start launches a command without waiting for it. Replaced in tests.
var start = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Command returns the program and arguments that open url on goos.
func Command(goos, url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// Open opens url in the default browser.
func Open(url string) error {
	name, args, err := Command(runtime.GOOS, url)
	if err != nil {
		return err
	}
	return start(name, args...)
}

// LocalURL returns the http URL of a listener bound to addr. Wildcard
// hosts are replaced by localhost.
func LocalURL(addr net.Addr) string {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return "http://" + addr.String() + "/"
	}

	host := "localhost"
	if tcp.IP != nil && !tcp.IP.IsUnspecified() {
		host = tcp.IP.String()
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(tcp.Port)) + "/"
}
