package browser

import (
	"errors"
	"net"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"darwin", "open", []string{"http://localhost:8080/"}},
		{"linux", "xdg-open", []string{"http://localhost:8080/"}},
		{"freebsd", "xdg-open", []string{"http://localhost:8080/"}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "http://localhost:8080/"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := Command(tt.goos, "http://localhost:8080/")
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCommand_Unsupported(t *testing.T) {
	_, _, err := Command("plan9", "http://localhost/")

	assert.EqualError(t, err, "unsupported platform: plan9")
}

func TestOpen(t *testing.T) {
	orig := start
	defer func() { start = orig }()

	var gotName string
	var gotArgs []string
	start = func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}

	err := Open("http://localhost:8080/")

	if _, _, cmdErr := Command(runtime.GOOS, ""); cmdErr != nil {
		assert.Error(t, err)
		return
	}
	require.NoError(t, err)
	assert.NotEmpty(t, gotName)
	assert.Contains(t, gotArgs, "http://localhost:8080/")
}

func TestOpen_StartError(t *testing.T) {
	orig := start
	defer func() { start = orig }()
	start = func(string, ...string) error { return errors.New("no display") }

	if _, _, err := Command(runtime.GOOS, ""); err != nil {
		t.Skip("platform has no browser command")
	}
	assert.EqualError(t, Open("http://localhost/"), "no display")
}

func TestLocalURL(t *testing.T) {
	tests := []struct {
		name string
		addr net.Addr
		want string
	}{
		{"wildcard v4", &net.TCPAddr{IP: net.IPv4zero, Port: 8080}, "http://localhost:8080/"},
		{"wildcard v6", &net.TCPAddr{IP: net.IPv6unspecified, Port: 8080}, "http://localhost:8080/"},
		{"no ip", &net.TCPAddr{Port: 9000}, "http://localhost:9000/"},
		{"loopback", &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 9000}, "http://127.0.0.1:9000/"},
		{"v6 host", &net.TCPAddr{IP: net.ParseIP("::1"), Port: 9000}, "http://[::1]:9000/"},
		{"non tcp", &net.UnixAddr{Name: "sock", Net: "unix"}, "http://sock/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalURL(tt.addr))
		})
	}
}
