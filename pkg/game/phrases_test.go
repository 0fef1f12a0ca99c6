package game

import (
	"testing"
)

// TestBuiltinPhrasesCount 测试内置日常短语池的大小
func TestBuiltinPhrasesCount(t *testing.T) {
	if got := len(BuiltinPhrases); got != 47 {
		t.Errorf("BuiltinPhrases count: got %d, want 47", got)
	}
}

// TestBuiltinScarePhrasesCount 测试内置惊吓短语池的大小
func TestBuiltinScarePhrasesCount(t *testing.T) {
	if got := len(BuiltinScarePhrases); got != 30 {
		t.Errorf("BuiltinScarePhrases count: got %d, want 30", got)
	}
}

// TestBuiltinPhrasesUnique 测试内置短语池无重复项
func TestBuiltinPhrasesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range BuiltinPhrases {
		if p == "" {
			t.Error("BuiltinPhrases contains an empty phrase")
		}
		if seen[p] {
			t.Errorf("Duplicate phrase in BuiltinPhrases: %q", p)
		}
		seen[p] = true
	}

	seen = make(map[string]bool)
	for _, p := range BuiltinScarePhrases {
		if p == "" {
			t.Error("BuiltinScarePhrases contains an empty phrase")
		}
		if seen[p] {
			t.Errorf("Duplicate phrase in BuiltinScarePhrases: %q", p)
		}
		seen[p] = true
	}
}
