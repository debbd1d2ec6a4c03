package richtext

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	bodyPolicyOnce sync.Once
	bodyPolicy     *bluemonday.Policy
)

func sanitizeMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(bodySanitizer().Sanitize(trimmed))
}

func bodySanitizer() *bluemonday.Policy {
	bodyPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("s", "u")
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		bodyPolicy = policy
	})
	return bodyPolicy
}
