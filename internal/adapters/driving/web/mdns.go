package web

import (
	"fmt"
	"net"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/mdns"

	"github.com/plantadash/plantsearch/internal/logger"
)

// MDNSService is the DNS-SD service type the server announces.
const MDNSService = "_plantsearch._tcp"

// Advertise announces the server listening on addr on the local network.
// The returned function stops the announcement.
func Advertise(addr, version string) (func(), error) {
	port, err := listenPort(addr)
	if err != nil {
		return nil, err
	}

	host, _ := os.Hostname()
	host = strings.TrimSpace(host)
	if host == "" {
		host = "plantsearch"
	}
	instance := "plantsearch-" + host

	meta := []string{
		"name=plantsearch",
		"version=" + version,
		"path=/",
	}
	service, err := mdns.NewMDNSService(instance, MDNSService, "", "", port, discoverAdvertiseIPs(), meta)
	if err != nil {
		return nil, fmt.Errorf("mdns service: %w", err)
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("mdns server: %w", err)
	}
	logger.Info("Advertising %s as %s on port %d", MDNSService, instance, port)

	return func() {
		_ = server.Shutdown()
	}, nil
}

// listenPort extracts the numeric port from a listen address like ":8080".
func listenPort(addr string) (int, error) {
	addr = strings.TrimSpace(addr)
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return 0, fmt.Errorf("listen address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(p)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("listen address %q: invalid port", addr)
	}
	return port, nil
}

func discoverAdvertiseIPs() []net.IP {
	ifAddrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}
	return filterAdvertiseIPs(ifAddrs)
}

// filterAdvertiseIPs keeps routable unicast addresses, IPv4 first.
func filterAdvertiseIPs(addrs []net.Addr) []net.IP {
	seen := map[string]struct{}{}
	out := make([]net.IP, 0, len(addrs))
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet == nil || ipNet.IP == nil {
			continue
		}
		ip := ipNet.IP
		if ip.IsLoopback() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			continue
		}
		normalized := ip.To16()
		if normalized == nil {
			continue
		}
		key := normalized.String()
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, normalized)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Slice(out, func(i, j int) bool {
		ai := out[i].To4() != nil
		aj := out[j].To4() != nil
		if ai != aj {
			return ai
		}
		return out[i].String() < out[j].String()
	})
	return out
}
