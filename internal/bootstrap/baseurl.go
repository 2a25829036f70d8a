package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dongdio/OpenBlog/internal/conf"
)

// ResolveBaseURL prefers the configured blog url without its trailing slash,
// otherwise builds http://<host-ip>:<port>.
func ResolveBaseURL(configured string, port int, hostIP func() string) string {
	if u := strings.TrimSpace(configured); u != "" {
		return strings.TrimSuffix(u, "/")
	}
	if port <= 0 {
		port = conf.DefaultPort
	}
	return fmt.Sprintf("http://%s:%d", hostIP(), port)
}
