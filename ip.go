package webpage

import (
	"net/netip"
	"strings"
)

// IsPrivateIPv4 reports whether a is an IPv4 address that must never
// be fetched: loopback, RFC 1918 private, link-local (which covers the
// cloud metadata endpoint 169.254.169.254), broadcast, unspecified,
// documentation ranges, 0.0.0.0/8, and everything from 224.0.0.0 up
// (multicast and reserved).
func IsPrivateIPv4(a netip.Addr) bool {
	if !a.Is4() {
		return false
	}
	o := a.As4()
	switch {
	case o[0] == 127: // loopback 127.0.0.0/8
		return true
	case o[0] == 10: // private 10.0.0.0/8
		return true
	case o[0] == 172 && o[1]&0xf0 == 16: // private 172.16.0.0/12
		return true
	case o[0] == 192 && o[1] == 168: // private 192.168.0.0/16
		return true
	case o[0] == 169 && o[1] == 254: // link-local 169.254.0.0/16
		return true
	case o == [4]byte{255, 255, 255, 255}: // broadcast
		return true
	case o[0] == 192 && o[1] == 0 && o[2] == 2: // documentation 192.0.2.0/24
		return true
	case o[0] == 198 && o[1] == 51 && o[2] == 100: // documentation 198.51.100.0/24
		return true
	case o[0] == 203 && o[1] == 0 && o[2] == 113: // documentation 203.0.113.0/24
		return true
	case o[0] == 0: // unspecified and 0.0.0.0/8
		return true
	case o[0] >= 224: // multicast and reserved
		return true
	}
	return false
}

// IsPrivateIPv6 reports whether a is an IPv6 address that must never
// be fetched: loopback, unspecified, multicast, unique-local
// (fc00::/7), link-local (fe80::/10), or an IPv4-mapped address whose
// embedded IPv4 is private per IsPrivateIPv4.
func IsPrivateIPv6(a netip.Addr) bool {
	if !a.Is6() || a.Is4() {
		return false
	}
	if a.Is4In6() {
		return IsPrivateIPv4(a.Unmap())
	}
	o := a.As16()
	switch {
	case a.IsLoopback(): // ::1
		return true
	case a.IsUnspecified(): // ::
		return true
	case o[0] == 0xff: // multicast ff00::/8
		return true
	case o[0]&0xfe == 0xfc: // unique-local fc00::/7
		return true
	case o[0] == 0xfe && o[1]&0xc0 == 0x80: // link-local fe80::/10
		return true
	}
	return false
}

// IsPrivateIP reports whether a is private per IsPrivateIPv4 or
// IsPrivateIPv6, whichever matches the address family.
func IsPrivateIP(a netip.Addr) bool {
	if a.Is4() {
		return IsPrivateIPv4(a)
	}
	return IsPrivateIPv6(a)
}

// IsInternalHost reports whether the hostname names an internal
// target regardless of DNS: localhost, anything under .local or
// .internal, and the GCP metadata host.
func IsInternalHost(host string) bool {
	h := strings.ToLower(host)
	return h == "localhost" ||
		strings.HasSuffix(h, ".local") ||
		strings.HasSuffix(h, ".internal") ||
		h == "metadata.google.internal"
}
