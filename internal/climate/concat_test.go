package climate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatIdentity(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "tempA_2020.nc", "temp", []int32{0, 1, 2}, []float32{290, 291, 292})

	d, err := OpenDataset(filepath.Join(dir, "tempA_2020.nc"))
	require.NoError(t, err)
	defer d.Close()

	c, err := Concat([]*Dataset{d}, "time")
	require.NoError(t, err)
	assert.Equal(t, []string{"time", "temp"}, c.Vars())

	v, ok := c.Var("temp")
	require.True(t, ok)
	assert.Equal(t, []float32{290, 291, 292}, v.Values)
	assert.Equal(t, []string{"time"}, v.Dimensions)

	v, ok = c.Var("time")
	require.True(t, ok)
	assert.Equal(t, []int32{0, 1, 2}, v.Values)
}

func TestConcatEmptyGroup(t *testing.T) {
	_, err := Concat(nil, "time")
	require.Error(t, err)
}

func TestAppendAlongAxis(t *testing.T) {
	t.Run("1d", func(t *testing.T) {
		got, err := appendAlongAxis([]float32{1, 2}, []float32{3})
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 2, 3}, got)
	})

	t.Run("2d", func(t *testing.T) {
		got, err := appendAlongAxis([][]int16{{1, 2}}, [][]int16{{3, 4}, {5, 6}})
		require.NoError(t, err)
		assert.Equal(t, [][]int16{{1, 2}, {3, 4}, {5, 6}}, got)
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := appendAlongAxis([]float32{1}, []float64{2})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "incompatible")
	})

	t.Run("not a slice", func(t *testing.T) {
		_, err := appendAlongAxis(1.5, 2.5)
		require.Error(t, err)
	})
}
