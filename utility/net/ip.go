package net

import (
	"net"
	"strings"
)

// LoopbackIP is returned when no usable interface address is found.
const LoopbackIP = "127.0.0.1"

var virtualPrefixes = []string{"docker", "veth", "br-", "vbox", "vmnet", "tun", "tap"}

func isVirtual(name string) bool {
	for _, prefix := range virtualPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// GetMachineIP returns the first IPv4 global unicast address of an up,
// non-loopback, non-virtual interface.
func GetMachineIP() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return LoopbackIP
	}
	var fallback string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			ip := addrIP(a)
			if ip == nil || !usable(ip) {
				continue
			}
			if ip.To4() == nil {
				continue
			}
			if isVirtual(iface.Name) {
				if fallback == "" {
					fallback = ip.String()
				}
				continue
			}
			return ip.String()
		}
	}
	if fallback != "" {
		return fallback
	}
	return LoopbackIP
}

func addrIP(a net.Addr) net.IP {
	switch v := a.(type) {
	case *net.IPNet:
		return v.IP
	case *net.IPAddr:
		return v.IP
	}
	return nil
}

// usable excludes link-local and APIPA (169.254.0.0/16) addresses.
func usable(ip net.IP) bool {
	if !ip.IsGlobalUnicast() || ip.IsLinkLocalUnicast() {
		return false
	}
	ip4 := ip.To4()
	return !(ip4 != nil && ip4[0] == 169 && ip4[1] == 254)
}
