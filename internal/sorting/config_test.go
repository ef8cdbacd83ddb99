package sorting

import (
	"encoding/json"
	"math/rand/v2"
	"testing"
)

func TestSetKeyAtSwapsDuplicate(t *testing.T) {
	cfg := Default() // completion, priority, createdDate, none

	got := cfg.SetKeyAt(0, KeyPriority)
	want := []SortKey{KeyPriority, KeyCompletion, KeyCreatedDate, KeyNone}
	if !got.Equal(Configuration{Priorities: want}) {
		t.Fatalf("got %v, want %v", got.Priorities, want)
	}
	if !cfg.Equal(Default()) {
		t.Errorf("SetKeyAt modified the receiver: %v", cfg.Priorities)
	}
}

func TestSetKeyAtAllowsRepeatedNone(t *testing.T) {
	cfg := Default().SetKeyAt(0, KeyNone)
	want := []SortKey{KeyNone, KeyPriority, KeyCreatedDate, KeyNone}
	if !cfg.Equal(Configuration{Priorities: want}) {
		t.Fatalf("got %v, want %v", cfg.Priorities, want)
	}
}

func TestSetKeyAtIgnoresOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, ConfigurationSize} {
		if got := Default().SetKeyAt(idx, KeyName); !got.Equal(Default()) {
			t.Errorf("index %d changed configuration: %v", idx, got.Priorities)
		}
	}
}

func TestSetKeyAtNeverDuplicatesActiveKeys(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 42))
	keys := Keys()
	cfg := Default()

	for i := 0; i < 2000; i++ {
		cfg = cfg.SetKeyAt(r.IntN(ConfigurationSize), keys[r.IntN(len(keys))])

		seen := map[SortKey]bool{}
		for _, k := range cfg.Priorities {
			if k == KeyNone {
				continue
			}
			if seen[k] {
				t.Fatalf("step %d: duplicate key %q in %v", i, k, cfg.Priorities)
			}
			seen[k] = true
		}
		if len(cfg.Priorities) != ConfigurationSize {
			t.Fatalf("step %d: size changed to %d", i, len(cfg.Priorities))
		}
	}
}

func TestConfigurationJSON(t *testing.T) {
	data, err := json.Marshal(Default())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"priorities":["未完了優先","重要度順","作成日時","なし"]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	var cfg Configuration
	if err := json.Unmarshal([]byte(`{"priorities":["名前順","bogus","なし","なし"]}`), &cfg); err == nil {
		t.Errorf("expected unknown key to fail decoding")
	}
}

func TestValidate(t *testing.T) {
	short := Configuration{Priorities: []SortKey{KeyName}}
	if err := short.Validate(); err == nil {
		t.Errorf("expected error for short configuration")
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("default should validate: %v", err)
	}

	repeated := Configuration{Priorities: []SortKey{KeyName, KeyName, KeyNone, KeyNone}}
	if err := repeated.Validate(); err == nil {
		t.Errorf("expected error for repeated active key")
	}
	allNone := Configuration{Priorities: []SortKey{KeyNone, KeyNone, KeyNone, KeyNone}}
	if err := allNone.Validate(); err != nil {
		t.Errorf("repeated none should validate: %v", err)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := map[string]SortKey{
		"名前順":      KeyName,
		"priority": KeyPriority,
		"created":  KeyCreatedDate,
		"none":     KeyNone,
	}
	for in, want := range tests {
		got, ok := ParseSortKey(in)
		if !ok || got != want {
			t.Errorf("ParseSortKey(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := ParseSortKey("size"); ok {
		t.Errorf("expected unknown key to fail")
	}
}

func TestKeyNextWraps(t *testing.T) {
	if KeyNone.Next() != KeyCompletion {
		t.Errorf("KeyNone.Next() = %q", KeyNone.Next())
	}
	if KeyCompletion.Prev() != KeyNone {
		t.Errorf("KeyCompletion.Prev() = %q", KeyCompletion.Prev())
	}
}
