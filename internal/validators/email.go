package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

var resolver = net.DefaultResolver

// EmailDomainOK aceita o e-mail quando o domínio tem MX ou ao menos um IP.
func EmailDomainOK(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	if mx, err := resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := resolver.LookupIPAddr(ctx, domain)
	return err == nil && len(ips) > 0
}
