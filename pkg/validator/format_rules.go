package validator

import (
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var (
	// E.164 with optional leading plus
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex         = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// Email validates an address with net/mail and requires a dotted domain.
func Email() Step[string] {
	return Step[string]{
		Kind:    "email",
		Message: "must be a valid email address",
		Check: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return false
			}
			addr, err := mail.ParseAddress(v)
			if err != nil {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" || strings.Contains(domain, "@") {
				return false
			}
			if !strings.Contains(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
	}
}

// URL requires an absolute URL with a scheme and a host. When schemes are
// given the URL must use one of them.
func URL(schemes ...string) Step[string] {
	msg := "must be a valid URL"
	if len(schemes) > 0 {
		msg = fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", "))
	}
	return Step[string]{
		Kind:    "url",
		Message: msg,
		Check: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return false
			}
			u, err := url.ParseRequestURI(v)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return false
			}
			return len(schemes) == 0 || slices.Contains(schemes, u.Scheme)
		},
	}
}

// Phone accepts international numbers such as +1234567890. Spaces and
// dashes are ignored.
func Phone() Step[string] {
	return Step[string]{
		Kind:    "phone",
		Message: "must be a valid phone number in international format",
		Check: func(v string) bool {
			cleaned := strings.NewReplacer(" ", "", "-", "").Replace(v)
			if len(cleaned) < 7 {
				return false
			}
			return phoneRegex.MatchString(cleaned)
		},
	}
}

func IP() Step[string] {
	return Step[string]{
		Kind:    "ip",
		Message: "must be a valid IP address",
		Check:   func(v string) bool { return net.ParseIP(v) != nil },
	}
}

func Alphanumeric() Step[string] {
	return Step[string]{
		Kind:    "alphanumeric",
		Message: "must contain only letters and numbers",
		Check:   alphanumericRegex.MatchString,
	}
}

func Alpha() Step[string] {
	return Step[string]{
		Kind:    "alpha",
		Message: "must contain only letters",
		Check:   alphaRegex.MatchString,
	}
}

func NumericString() Step[string] {
	return Step[string]{
		Kind:    "numeric",
		Message: "must contain only numbers",
		Check:   numericStringRegex.MatchString,
	}
}

// Matches validates against re. description names the pattern in the message.
func Matches(re *regexp.Regexp, description string) Step[string] {
	if re == nil {
		panic(ErrNilRule)
	}
	if description == "" {
		description = re.String()
	}
	return Step[string]{
		Kind:    "regex_pattern",
		Message: fmt.Sprintf("must match %s pattern", description),
		Values:  map[string]any{"pattern": description},
		Check:   re.MatchString,
	}
}
