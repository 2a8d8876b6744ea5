package mock

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule maps URLs containing Match to Result.
type Rule struct {
	Match  string `yaml:"match"`
	Result string `yaml:"result"`
}

// Rules decides the verdict for a URL: the first matching rule wins,
// otherwise Default applies.
type Rules struct {
	Default string `yaml:"default"`
	Rules   []Rule `yaml:"rules"`
}

// DefaultRules returns a small rule set that flags common phishing markers.
func DefaultRules() Rules {
	return Rules{
		Default: "legitimate",
		Rules: []Rule{
			{Match: "phish", Result: "phishing"},
			{Match: "paypa1", Result: "phishing"},
			{Match: "login-verify", Result: "phishing"},
			{Match: "account-suspended", Result: "phishing"},
		},
	}
}

// LoadRules reads a yaml rules file. An empty default verdict becomes
// "legitimate".
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("reading rules: %w", err)
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("parsing rules: %w", err)
	}
	for i, rule := range r.Rules {
		if rule.Match == "" || rule.Result == "" {
			return Rules{}, fmt.Errorf("rule %d: match and result are required", i+1)
		}
	}
	if r.Default == "" {
		r.Default = "legitimate"
	}
	return r, nil
}

// Classify returns the verdict for url. Matching is case-insensitive.
func (r Rules) Classify(url string) string {
	lower := strings.ToLower(url)
	for _, rule := range r.Rules {
		if strings.Contains(lower, strings.ToLower(rule.Match)) {
			return rule.Result
		}
	}
	if r.Default == "" {
		return "legitimate"
	}
	return r.Default
}
