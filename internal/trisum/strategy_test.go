package trisum

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOrder(t *testing.T) {
	ids := IDs()
	assert.Equal(t, []string{IDNestedLoop, IDPerTerm, IDClosedForm, IDLazySeq}, ids)

	d := Default()
	d[0].Name = "changed"
	assert.Equal(t, "Inefficient Method", Default()[0].Name, "Default 应返回副本")
}

func TestSelect(t *testing.T) {
	all, err := Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	got, err := Select([]string{" closed_form", "nested", "closed_form"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, IDClosedForm, got[0].ID)
	assert.Equal(t, IDNestedLoop, got[1].ID)

	_, err = Select([]string{"bogus"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}
