package validators

import (
	"context"
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the domain part of email has an MX or
// address record. A nil resolver means net.DefaultResolver.
func IsEmailDomainValid(ctx context.Context, resolver *net.Resolver, email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if resolver == nil {
		resolver = net.DefaultResolver
	}

	if mx, err := resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
