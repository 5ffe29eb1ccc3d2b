package recommend

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
)

func catalog(n int) []models.Video {
	out := make([]models.Video, n)
	for i := range out {
		out[i] = models.Video{ID: fmt.Sprint(i)}
	}
	return out
}

func TestPick_ExcludesCurrentAndCaps(t *testing.T) {
	all := catalog(40)
	got := Pick(all, "7", DefaultCount, rand.New(rand.NewSource(1)))
	if len(got) != DefaultCount {
		t.Fatalf("len = %d, want %d", len(got), DefaultCount)
	}
	seen := map[string]bool{}
	for _, v := range got {
		if v.ID == "7" {
			t.Fatalf("current video recommended")
		}
		if seen[v.ID] {
			t.Fatalf("duplicate recommendation %s", v.ID)
		}
		seen[v.ID] = true
	}
	for i, v := range all {
		if v.ID != fmt.Sprint(i) {
			t.Fatalf("catalog reordered at %d", i)
		}
	}
}

func TestPick_SmallCatalog(t *testing.T) {
	got := Pick(catalog(3), "0", DefaultCount, rand.New(rand.NewSource(2)))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got := Pick(catalog(1), "0", DefaultCount, nil); len(got) != 0 {
		t.Fatalf("only video recommended to itself")
	}
	if got := Pick(catalog(5), "x", 0, nil); len(got) != 0 {
		t.Fatalf("n=0 returned %d", len(got))
	}
}

func TestPick_DeterministicWithSeed(t *testing.T) {
	a := Pick(catalog(30), "", 10, rand.New(rand.NewSource(42)))
	b := Pick(catalog(30), "", 10, rand.New(rand.NewSource(42)))
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed produced different picks at %d", i)
		}
	}
}
