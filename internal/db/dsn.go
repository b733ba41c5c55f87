package db

import (
	"net/url"
	"regexp"
	"strings"
)

var kvPasswordRegex = regexp.MustCompile(`(?i)(password=)(\S+)`)

// MaskDSN hides the password of a key=value or URL style DSN for logging.
func MaskDSN(dsn string) string {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "***"
		}
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "***")
		}
		return u.String()
	}
	return kvPasswordRegex.ReplaceAllString(dsn, `${1}***`)
}
