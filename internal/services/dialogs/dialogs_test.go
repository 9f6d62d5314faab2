package dialogs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryOpenClose(t *testing.T) {
	r := NewRegistry()
	require.False(t, r.IsOpen(Cyclegram))

	r.Open(Cyclegram)
	require.True(t, r.IsOpen(Cyclegram))
	require.Equal(t, []string{"cyclegram"}, r.OpenNames())

	r.Close(Cyclegram)
	require.False(t, r.IsOpen(Cyclegram))
	require.Empty(t, r.OpenNames())
}

func TestRegistryHasFixedNames(t *testing.T) {
	r := NewRegistry()
	snap := r.Snapshot()

	require.Len(t, snap, 26)
	require.Len(t, All(), 26)
	for _, n := range All() {
		_, ok := snap[n.String()]
		require.True(t, ok, n.String())
	}
}

func TestRegistryRejectsInvalidName(t *testing.T) {
	r := NewRegistry()
	var zero Name

	require.Panics(t, func() { r.Open(zero) })
	require.Panics(t, func() { r.Close(zero) })
	require.Panics(t, func() { r.IsOpen(zero) })
	require.Len(t, r.Snapshot(), 26)
}

func TestParseName(t *testing.T) {
	n, err := ParseName("lineParams")
	require.NoError(t, err)
	require.Equal(t, LineParams, n)

	_, err = ParseName("weather")
	require.Error(t, err)

	_, err = ParseName("")
	require.Error(t, err)
}
