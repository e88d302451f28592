package render

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// BannerKind selects the alert style.
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "danger"
	BannerInfo    BannerKind = "info"
)

// DefaultErrorMessage is shown when an error banner has no message.
const DefaultErrorMessage = "Please fix the errors in the form."

// Banner is a dismissible alert.
type Banner struct {
	Kind    BannerKind
	Title   string
	Message string
}

// SuccessBanner is shown once a registration has been handed off.
func SuccessBanner() Banner {
	return Banner{
		Kind:    BannerSuccess,
		Title:   "Success!",
		Message: "Registration completed successfully.",
	}
}

// ErrorBanner wraps message in an error alert.
func ErrorBanner(message string) Banner {
	if strings.TrimSpace(message) == "" {
		message = DefaultErrorMessage
	}
	return Banner{Kind: BannerError, Title: "Error!", Message: message}
}

// Text renders the banner as a single plain line.
func (b Banner) Text() string {
	if b.Title == "" {
		return b.Message
	}
	return b.Title + " " + b.Message
}

var (
	bannerPolicyOnce sync.Once
	bannerPolicy     *bluemonday.Policy
)

// BannerHTML renders b as Bootstrap alert markup. Title and message are
// escaped, and the final markup passes through a policy that only keeps the
// alert's own elements and classes.
func BannerHTML(b Banner) string {
	kind := b.Kind
	if kind == "" {
		kind = BannerInfo
	}
	icon := "fa-info-circle"
	switch kind {
	case BannerSuccess:
		icon = "fa-check-circle"
	case BannerError:
		icon = "fa-exclamation-circle"
	}
	raw := fmt.Sprintf(
		`<div class="alert alert-%s alert-dismissible fade show" role="alert"><i class="fas %s me-2"></i><strong>%s</strong> %s<button type="button" class="btn-close" data-bs-dismiss="alert"></button></div>`,
		kind, icon, html.EscapeString(b.Title), html.EscapeString(b.Message),
	)
	return bannerSanitizer().Sanitize(raw)
}

func bannerSanitizer() *bluemonday.Policy {
	bannerPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("div", "i", "strong", "button")
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("div", "i", "button")
		policy.AllowAttrs("role").OnElements("div")
		policy.AllowAttrs("type", "data-bs-dismiss").OnElements("button")
		bannerPolicy = policy
	})
	return bannerPolicy
}
