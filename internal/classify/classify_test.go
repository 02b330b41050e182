package classify

import "testing"

func TestClassifyBiomaterials(t *testing.T) {
	cat := Classify("Mycelium Leather for Luxury Fashion", "Engineered sheets replace animal hides")
	if cat != Biomaterials {
		t.Errorf("expected Biomaterials, got %s", cat)
	}
}

func TestClassifyFood(t *testing.T) {
	cat := Classify("Scaling Mycoprotein Production", "Airlift bioreactor design for food-grade biomass")
	if cat != FoodBeverage {
		t.Errorf("expected Food & Beverage, got %s", cat)
	}
}

func TestClassifyHealth(t *testing.T) {
	cat := Classify("Lion's Mane and Cognitive Decline", "A randomized clinical trial of a medicinal extract")
	if cat != HealthWellness {
		t.Errorf("expected Health & Wellness, got %s", cat)
	}
}

func TestClassifyAgriculture(t *testing.T) {
	cat := Classify("Straw Substrate Yields for Oyster Cultivation", "Comparing harvest weight across farms")
	if cat != Agriculture {
		t.Errorf("expected Agriculture, got %s", cat)
	}
}

func TestClassifyEnvironment(t *testing.T) {
	cat := Classify("Mycoremediation of Oil Spills", "White-rot degradation of contaminated sediments")
	if cat != Environment {
		t.Errorf("expected Environment, got %s", cat)
	}
}

func TestClassifyMultiWordKeyword(t *testing.T) {
	cat := Classify("Reusing spent mushroom substrate", "")
	if cat != Agriculture {
		t.Errorf("expected Agriculture, got %s", cat)
	}
}

func TestClassifyDefaultsToMycology(t *testing.T) {
	if cat := Classify("", ""); cat != Mycology {
		t.Errorf("expected Mycology for empty input, got %s", cat)
	}
	if cat := Classify("A Year in Review", "What we did"); cat != Mycology {
		t.Errorf("expected Mycology for generic content, got %s", cat)
	}
}

func TestResolveAlias(t *testing.T) {
	tests := []struct {
		alias    string
		expected Category
		wantErr  bool
	}{
		{"bio", Biomaterials, false},
		{"food", FoodBeverage, false},
		{"health", HealthWellness, false},
		{"agri", Agriculture, false},
		{"myco", Mycology, false},
		{"Food & Beverage", FoodBeverage, false},
		{" environment ", Environment, false},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		got, err := ResolveAlias(tt.alias)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ResolveAlias(%q): expected error", tt.alias)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveAlias(%q): unexpected error: %v", tt.alias, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ResolveAlias(%q) = %q, want %q", tt.alias, got, tt.expected)
		}
	}
}

func TestAllCategories(t *testing.T) {
	if n := len(AllCategories()); n != 6 {
		t.Errorf("expected 6 categories, got %d", n)
	}
}
