package status

import (
	"strings"

	"github.com/hazelshop/admin-backend/pkg/types"
)

// Registry is the single source of truth for the status vocabularies and
// their display labels. It is built once at startup and never mutated, so it
// is safe for unsynchronized concurrent reads.
type Registry struct {
	domains map[types.StatusDomain]*vocabulary
}

type vocabulary struct {
	// codes keeps the declared order; selection UIs rely on it being stable.
	codes     []string
	canonical map[string]string
	labels    map[string]string
}

type entry struct {
	code  string
	label string
}

func newVocabulary(entries []entry) *vocabulary {
	v := &vocabulary{
		canonical: make(map[string]string, len(entries)),
		labels:    make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		key := strings.ToLower(e.code)
		v.codes = append(v.codes, e.code)
		v.canonical[key] = e.code
		v.labels[key] = e.label
	}
	return v
}

func NewRegistry() *Registry {
	return &Registry{
		domains: map[types.StatusDomain]*vocabulary{
			types.StatusDomainOrder: newVocabulary([]entry{
				{string(types.OrderStatusPending), "待處理"},
				{string(types.OrderStatusProcessing), "處理中"},
				{string(types.OrderStatusShipping), "配送中"},
				{string(types.OrderStatusCompleted), "已完成"},
				{string(types.OrderStatusCanceled), "已取消"},
			}),
			types.StatusDomainPayment: newVocabulary([]entry{
				{string(types.PaymentStatusPaid), "已付款"},
				{string(types.PaymentStatusUnpaid), "未付款"},
				{string(types.PaymentStatusFailed), "付款失敗"},
				{string(types.PaymentStatusRefunded), "已退款"},
			}),
		},
	}
}

// IsValid reports whether code belongs to the domain's vocabulary. Matching
// is case-insensitive and ignores surrounding whitespace; an empty code is
// never valid.
func (r *Registry) IsValid(domain types.StatusDomain, code string) bool {
	_, ok := r.Canonical(domain, code)
	return ok
}

// Canonical resolves code to its declared spelling, case-insensitively.
func (r *Registry) Canonical(domain types.StatusDomain, code string) (string, bool) {
	v, ok := r.domains[domain]
	if !ok {
		return "", false
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	c, ok := v.canonical[strings.ToLower(code)]
	return c, ok
}

// Label returns the display label for a recognized code. Unrecognized codes
// pass through unchanged and an empty code yields "": legacy callers depend
// on degraded display text, not on rejection.
func (r *Registry) Label(domain types.StatusDomain, code string) string {
	v, ok := r.domains[domain]
	if !ok {
		return code
	}
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return ""
	}
	if label, ok := v.labels[strings.ToLower(trimmed)]; ok {
		return label
	}
	return code
}

// AllCodes returns the domain's vocabulary in its canonical declared order.
// The returned slice is a copy; callers may not mutate the registry through it.
func (r *Registry) AllCodes(domain types.StatusDomain) []string {
	v, ok := r.domains[domain]
	if !ok {
		return nil
	}
	out := make([]string, len(v.codes))
	copy(out, v.codes)
	return out
}
