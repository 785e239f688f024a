package triage

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"healthassist/internal/keyword"
	"healthassist/internal/models"
)

// ErrInvalidRule is returned when a rule has no keywords or a malformed condition
var ErrInvalidRule = errors.New("invalid classifier rule")

// RuleBasedClassifier implements a simple rule-based classifier.
// Every rule is tested on its own, so a description can match several conditions.
type RuleBasedClassifier struct {
	rules    []Rule
	fallback models.Condition
	matcher  *keyword.Matcher
}

// NewRuleBasedClassifier creates a new rule-based classifier
func NewRuleBasedClassifier(config ClassifierConfig) (*RuleBasedClassifier, error) {
	if len(config.Rules) == 0 {
		config.Rules = DefaultRules()
	}

	fallback := DefaultFallback()
	if config.Fallback != nil {
		fallback = config.Fallback.Clone()
	}

	validate := validator.New()
	for i, rule := range config.Rules {
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("%w: rule %d has no keywords", ErrInvalidRule, i)
		}
		if err := validate.Struct(rule.Condition); err != nil {
			return nil, fmt.Errorf("%w: rule %d: %v", ErrInvalidRule, i, err)
		}
	}
	if err := validate.Struct(fallback); err != nil {
		return nil, fmt.Errorf("%w: fallback: %v", ErrInvalidRule, err)
	}

	matcher, err := keyword.NewMatcher(lo.FlatMap(config.Rules, func(r Rule, _ int) []string {
		return r.Keywords
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create symptom matcher: %w", err)
	}

	rules := lo.Map(config.Rules, func(r Rule, _ int) Rule {
		return Rule{Keywords: append([]string(nil), r.Keywords...), Condition: r.Condition.Clone()}
	})

	return &RuleBasedClassifier{
		rules:    rules,
		fallback: fallback,
		matcher:  matcher,
	}, nil
}

// Classify implements the Classifier interface
func (c *RuleBasedClassifier) Classify(symptoms string) []models.Condition {
	hits := c.matcher.Hits(symptoms)

	var conditions []models.Condition
	for _, rule := range c.rules {
		if hits.Any(rule.Keywords...) {
			conditions = append(conditions, rule.Condition.Clone())
		}
	}

	if len(conditions) == 0 {
		return []models.Condition{c.fallback.Clone()}
	}

	return conditions
}
