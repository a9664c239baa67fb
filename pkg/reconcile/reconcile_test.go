package reconcile_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/appin/pkg/appimage"
	"github.com/arthur-debert/appin/pkg/reconcile"
)

func bundles(names ...string) []appimage.Bundle {
	out := make([]appimage.Bundle, len(names))
	for i, name := range names {
		out[i] = appimage.NewBundle("/apps/" + name)
	}
	return out
}

func TestReconcile_Partition(t *testing.T) {
	in := bundles("Bar-9.AppImage", "Foo-1.2.AppImage", "Qux.AppImage")

	res := reconcile.Reconcile(in, []string{"Foo", "Qux"})

	assert.Len(t, res.Matched, 2)
	assert.Len(t, res.Unmatched, 1)
	assert.Equal(t, "Foo-1.2.AppImage", res.Matched[0].Name)
	assert.Equal(t, "Qux.AppImage", res.Matched[1].Name)
	assert.Equal(t, "Bar-9.AppImage", res.Unmatched[0].Name)
}

func TestReconcile_EmptyDescriptors(t *testing.T) {
	in := bundles("Foo-1.2.AppImage")

	res := reconcile.Reconcile(in, nil)

	assert.Empty(t, res.Matched)
	assert.Len(t, res.Unmatched, 1)
}

func TestReconcile_EmptyBundles(t *testing.T) {
	res := reconcile.Reconcile(nil, []string{"Foo"})

	assert.Empty(t, res.Matched)
	assert.Empty(t, res.Unmatched)
}

func TestReconcile_OrderPreserved(t *testing.T) {
	in := bundles("a-1.AppImage", "b-1.AppImage", "c-1.AppImage", "d-1.AppImage")

	res := reconcile.Reconcile(in, []string{"b", "d"})

	assert.Equal(t, "b-1.AppImage", res.Matched[0].Name)
	assert.Equal(t, "d-1.AppImage", res.Matched[1].Name)
	assert.Equal(t, "a-1.AppImage", res.Unmatched[0].Name)
	assert.Equal(t, "c-1.AppImage", res.Unmatched[1].Name)
}

func TestReconcile_ExhaustiveAndDisjoint(t *testing.T) {
	// Randomized: the partition always covers every bundle exactly once
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		var in []appimage.Bundle
		for i := 0; i < rng.Intn(20); i++ {
			in = append(in, appimage.NewBundle(fmt.Sprintf("/apps/app%d-%d.AppImage", rng.Intn(10), i)))
		}
		var ids []string
		for i := 0; i < rng.Intn(10); i++ {
			ids = append(ids, fmt.Sprintf("app%d", rng.Intn(10)))
		}

		res := reconcile.Reconcile(in, ids)

		assert.Equal(t, len(in), len(res.Matched)+len(res.Unmatched))

		seen := make(map[string]int)
		for _, b := range res.Matched {
			seen[b.Path]++
		}
		for _, b := range res.Unmatched {
			seen[b.Path]++
		}
		for _, b := range in {
			assert.Equal(t, 1, seen[b.Path], "bundle %s must appear exactly once", b.Path)
		}
	}
}
