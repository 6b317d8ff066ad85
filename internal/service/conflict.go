package service

import (
	"strings"

	"github.com/alexanderramin/skinadvisor/internal/catalog"
)

// DetectConflicts reports product pairs that should not be used together.
// Every unordered pair is checked against every rule in both roles; a pair
// is reported at most once, named in input order. Rules must already be
// lowercased, which catalog.Parse guarantees.
func DetectConflicts(rules []catalog.ConflictRule, products []string) []string {
	conflicts := []string{}
	if len(products) < 2 {
		return conflicts
	}
	lowered := make([]string, len(products))
	for i, p := range products {
		lowered[i] = strings.ToLower(p)
	}
	for i := range products {
		for j := i + 1; j < len(products); j++ {
			if pairConflicts(rules, lowered[i], lowered[j]) {
				conflicts = append(conflicts, products[i]+" and "+products[j]+" shouldn't be used together")
			}
		}
	}
	return conflicts
}

func pairConflicts(rules []catalog.ConflictRule, a, b string) bool {
	for _, rule := range rules {
		if ruleMatches(rule, a, b) || ruleMatches(rule, b, a) {
			return true
		}
	}
	return false
}

func ruleMatches(rule catalog.ConflictRule, trigger, other string) bool {
	if !strings.Contains(trigger, rule.Trigger) {
		return false
	}
	for _, inc := range rule.Incompatible {
		if strings.Contains(other, inc) {
			return true
		}
	}
	return false
}

// ConflictWarning renders conflicts as the warning block shown before a
// profile update confirmation, or "" when there are none.
func ConflictWarning(conflicts []string) string {
	if len(conflicts) == 0 {
		return ""
	}
	return "Product Compatibility Warning:\n" + strings.Join(conflicts, "\n")
}
