// Package clientip resolves the address of the client behind proxies.
//
// FromRequest checks CF-Connecting-IP, X-Forwarded-For (first valid entry)
// and X-Real-IP before falling back to RemoteAddr. Only syntactically valid
// addresses are accepted; the result is normalised by net/netip. Headers are
// trusted as-is, so deploy behind a proxy that overwrites them.
package clientip
