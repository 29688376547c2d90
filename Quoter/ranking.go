package Quoter

import (
	"sort"
	"strings"
)

// nameRule refines a weight by product-name substring within one operator.
type nameRule struct {
	Match  string
	Weight int
}

// weightRule assigns ranking weights to an operator matched by lower-cased
// substring. Name rules are tried in order; the first match wins, otherwise
// Default applies.
type weightRule struct {
	Operators []string
	Names     []nameRule
	Default   int
}

// weightRules is the curated preferred-to-sell ordering, evaluated top to
// bottom. Lower weight ranks first; price only breaks ties within a tier.
var weightRules = []weightRule{
	{
		Operators: []string{"amhemed"},
		Names: []nameRule{
			{Match: "ideal", Weight: 10},
			{Match: "amhe+", Weight: 11},
			{Match: "plus", Weight: 12},
		},
		Default: 19,
	},
	{
		Operators: []string{"gndi", "notredame"},
		Names: []nameRule{
			{Match: "nosso", Weight: 20},
			{Match: "notrelife", Weight: 21},
			{Match: "200", Weight: 22},
			{Match: "400", Weight: 23},
		},
		Default: 29,
	},
	{Operators: []string{"eva"}, Default: 30},
	{Operators: []string{"fênix", "fenix"}, Default: 40},
	{Operators: []string{"unimed"}, Default: 50},
	{Operators: []string{"amil"}, Default: 60},
}

// catchAllWeight ranks operators no rule matches after everything curated.
const catchAllWeight = 100

func planWeight(plan Plan) int {
	operator := strings.ToLower(plan.Operator)
	name := strings.ToLower(plan.Name)
	for _, rule := range weightRules {
		matched := false
		for _, op := range rule.Operators {
			if strings.Contains(operator, op) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, nr := range rule.Names {
			if strings.Contains(name, nr.Match) {
				return nr.Weight
			}
		}
		return rule.Default
	}
	return catchAllWeight
}

// Rank orders calculated plans by curated weight, then by total price. The
// sort is stable so equal (weight, price) pairs keep catalog order.
func Rank(plans []CalculatedPlan) []CalculatedPlan {
	ranked := make([]CalculatedPlan, len(plans))
	copy(ranked, plans)
	sort.SliceStable(ranked, func(i, j int) bool {
		wi, wj := planWeight(ranked[i].Plan), planWeight(ranked[j].Plan)
		if wi != wj {
			return wi < wj
		}
		return ranked[i].TotalPrice < ranked[j].TotalPrice
	})
	return ranked
}
