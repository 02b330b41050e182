package classify

import (
	"fmt"
	"strings"
	"unicode"
)

// Category is a research area used when a source does not supply one.
type Category string

const (
	Biomaterials   Category = "Biomaterials"
	FoodBeverage   Category = "Food & Beverage"
	HealthWellness Category = "Health & Wellness"
	Agriculture    Category = "Agriculture"
	Environment    Category = "Environment"
	Mycology       Category = "Mycology"
)

// AllCategories returns all valid categories in canonical order.
func AllCategories() []Category {
	return []Category{Biomaterials, FoodBeverage, HealthWellness, Agriculture, Environment, Mycology}
}

var categoryKeywords = map[Category][]string{
	Biomaterials: {
		"mycelium", "composite", "leather", "packaging", "insulation", "textile",
		"biomaterial", "foam", "construction", "panel", "material",
	},
	FoodBeverage: {
		"mycoprotein", "protein", "food", "meat", "fermentation", "bioreactor",
		"biomass", "nutrition", "beverage", "ingredient", "meat alternative",
	},
	HealthWellness: {
		"clinical", "therapeutic", "immune", "cognitive", "cognition", "supplement",
		"psilocybin", "glucan", "medicinal", "extract", "trial", "health",
	},
	Agriculture: {
		"substrate", "cultivation", "yield", "farm", "soil", "crop", "compost",
		"harvest", "spawn", "grow", "spent mushroom substrate",
	},
	Environment: {
		"remediation", "mycoremediation", "pollution", "contaminated", "carbon",
		"degradation", "ecosystem", "climate", "waste", "plastic",
	},
	Mycology: {
		"fungi", "fungal", "genome", "species", "taxonomy", "spore", "hyphae",
		"phylogeny", "strain",
	},
}

// Aliases maps short CLI values to full category names.
var Aliases = map[string]Category{
	"bio":         Biomaterials,
	"food":        FoodBeverage,
	"health":      HealthWellness,
	"agri":        Agriculture,
	"environment": Environment,
	"myco":        Mycology,
}

// ResolveAlias maps a CLI alias or a full category name to a Category.
func ResolveAlias(alias string) (Category, error) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	if cat, ok := Aliases[alias]; ok {
		return cat, nil
	}
	for _, cat := range AllCategories() {
		if strings.EqualFold(string(cat), alias) {
			return cat, nil
		}
	}
	valid := make([]string, 0, len(Aliases))
	for _, cat := range AllCategories() {
		for k, v := range Aliases {
			if v == cat {
				valid = append(valid, k)
			}
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: %s)", alias, strings.Join(valid, ", "))
}

// Classify picks the category whose keywords best match the title and
// summary. Title hits count double. Defaults to Mycology.
func Classify(title, summary string) Category {
	titleTokens := tokenize(title)
	summaryTokens := tokenize(summary)
	titleLower := strings.ToLower(title)
	summaryLower := strings.ToLower(summary)

	var bestCat Category
	bestScore := 0

	for _, cat := range AllCategories() {
		score := 0
		for _, kw := range categoryKeywords[cat] {
			if !strings.Contains(kw, " ") {
				for _, t := range titleTokens {
					if strings.Contains(t, kw) {
						score += 2
					}
				}
				for _, t := range summaryTokens {
					if strings.Contains(t, kw) {
						score++
					}
				}
			} else {
				if strings.Contains(titleLower, kw) {
					score += 2
				}
				if strings.Contains(summaryLower, kw) {
					score++
				}
			}
		}
		// Ties go to the earlier category.
		if score > bestScore {
			bestScore = score
			bestCat = cat
		}
	}

	if bestScore == 0 {
		return Mycology
	}
	return bestCat
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
