package toolcheck

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRegistry_RegisterAndGet(t *testing.T) {
	reg := NewStaticRegistry()
	reg.Register(&Definition{Name: "alpha", Description: "first"})

	def, ok := reg.GetDefinition("alpha")
	require.True(t, ok)
	assert.Equal(t, "first", def.Description)

	_, ok = reg.GetDefinition("beta")
	assert.False(t, ok)
}

func TestStaticRegistry_ReplaceOnSameName(t *testing.T) {
	reg := NewStaticRegistry(&Definition{Name: "alpha", Description: "first"})
	reg.Register(&Definition{Name: "alpha", Description: "second"})

	def, ok := reg.GetDefinition("alpha")
	require.True(t, ok)
	assert.Equal(t, "second", def.Description)
	assert.Len(t, reg.GetDefinitions(), 1)
}

func TestStaticRegistry_SortedDefinitions(t *testing.T) {
	reg := NewStaticRegistry(
		&Definition{Name: "zeta"},
		&Definition{Name: "alpha"},
		&Definition{Name: "mid"},
	)
	defs := reg.GetDefinitions()
	require.Len(t, defs, 3)
	assert.Equal(t, "alpha", defs[0].Name)
	assert.Equal(t, "mid", defs[1].Name)
	assert.Equal(t, "zeta", defs[2].Name)
}

func TestStaticRegistry_IgnoresNilAndUnnamed(t *testing.T) {
	reg := NewStaticRegistry(nil, &Definition{})
	assert.Empty(t, reg.GetDefinitions())
}

func TestStaticRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewStaticRegistry()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			reg.Register(&Definition{Name: fmt.Sprintf("tool_%02d", i)})
		})
		wg.Go(func() {
			reg.GetDefinitions()
			reg.GetDefinition("tool_00")
		})
	}
	wg.Wait()
	assert.Len(t, reg.GetDefinitions(), 50)
}
