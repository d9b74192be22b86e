package extract

import (
	"context"
	"testing"
)

func TestRulesEndToEnd(t *testing.T) {
	text := "Vijay Kumar was born on March 15, 1989, in Jaipur."
	patterns, err := Compile([]PatternDef{
		{Label: "First Name", Expr: `(\w+)\s\w+\swas born`, Group: 1},
		{Label: "Birth City", Expr: `in (\w+)\.`, Group: 1},
	})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	result, err := NewRules(patterns, 0).Extract(context.Background(), text)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(result.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(result.Records))
	}

	first := result.Records[0]
	if first.Index != 1 || first.Key != "First Name" || first.Value != "Vijay" {
		t.Errorf("record 1 = {%d %s %s}, want {1 First Name Vijay}",
			first.Index, first.Key, first.Value)
	}
	second := result.Records[1]
	if second.Index != 2 || second.Key != "Birth City" || second.Value != "Jaipur" {
		t.Errorf("record 2 = {%d %s %s}, want {2 Birth City Jaipur}",
			second.Index, second.Key, second.Value)
	}

	for _, rec := range result.Records {
		if rec.Comment != text {
			t.Errorf("record %d comment = %q, want the full sentence", rec.Index, rec.Comment)
		}
	}
}

func TestRulesEveryDistinctFactAppearsOnce(t *testing.T) {
	text := "Jaipur appears here. And Jaipur appears again. Plus Delhi once."
	patterns, err := Compile([]PatternDef{
		{Label: "City", Expr: `(Jaipur|Delhi)`, Group: 1},
	})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	result, err := NewRules(patterns, 0).Extract(context.Background(), text)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	counts := make(map[string]int)
	for _, rec := range result.Records {
		counts[rec.Key+"/"+rec.Value]++
	}
	if counts["City/Jaipur"] != 1 || counts["City/Delhi"] != 1 {
		t.Errorf("Expected each distinct fact exactly once, got %v", counts)
	}
}

func TestRulesCrossPatternDedup(t *testing.T) {
	// Two patterns both capturing "Jaipur" under the same label collapse to
	// one record.
	text := "He was born in Jaipur. Raised in Jaipur as well."
	patterns, err := Compile([]PatternDef{
		{Label: "Birth City", Expr: `born in (\w+)`, Group: 1},
		{Label: "Birth City", Expr: `Raised in (\w+)`, Group: 1},
	})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	result, err := NewRules(patterns, 0).Extract(context.Background(), text)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(result.Records) != 1 {
		t.Fatalf("Expected 1 record after cross-pattern dedup, got %d", len(result.Records))
	}
	if result.Records[0].Comment != "He was born in Jaipur." {
		t.Errorf("Expected first occurrence's sentence, got %q", result.Records[0].Comment)
	}
}

func TestRulesUnmatchedSurfacedNotError(t *testing.T) {
	patterns, err := Compile([]PatternDef{
		{Label: "Hit", Expr: `text`, Group: 0},
		{Label: "Miss", Expr: `absent-token`, Group: 0},
	})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	result, err := NewRules(patterns, 0).Extract(context.Background(), "some text here")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(result.Unmatched) != 1 || result.Unmatched[0] != "Miss" {
		t.Errorf("Expected Unmatched = [Miss], got %v", result.Unmatched)
	}
}

func TestRulesCancelled(t *testing.T) {
	patterns, err := Compile([]PatternDef{{Label: "Any", Expr: `\w+`, Group: 0}})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewRules(patterns, 0).Extract(ctx, "a b c"); err == nil {
		t.Error("Expected error from cancelled context")
	}
}

func TestDefaultPatternsCompile(t *testing.T) {
	if _, err := Compile(DefaultPatterns()); err != nil {
		t.Fatalf("Default patterns must compile: %v", err)
	}
}

func TestDefaultPatternsOnProfileText(t *testing.T) {
	text := "Vijay Kumar was born on March 15, 1989, in Jaipur, Rajasthan, " +
		"making him 36 years old as of 2025. As an Indian national, his O+ blood group " +
		"is noted for emergency contact purposes."

	patterns, err := Compile(DefaultPatterns())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	result, err := NewRules(patterns, 0).Extract(context.Background(), text)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	want := map[string]string{
		"First Name":    "Vijay",
		"Last Name":     "Kumar",
		"Date of Birth": "March 15, 1989",
		"Birth City":    "Jaipur",
		"Birth State":   "Rajasthan",
		"Age":           "36",
		"Blood Group":   "O+",
		"Nationality":   "Indian",
	}

	got := make(map[string]string)
	for _, rec := range result.Records {
		got[rec.Key] = rec.Value
	}
	for key, value := range want {
		if got[key] != value {
			t.Errorf("%s = %q, want %q", key, got[key], value)
		}
	}
}
