package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shipwright/internal/core/domain"
)

func TestParseDescribe_ExactTag(t *testing.T) {
	v, err := domain.ParseDescribe("v3.2.1")
	require.NoError(t, err)
	assert.True(t, v.IsRelease())
	assert.Equal(t, "3.2.1", v.String())
}

func TestParseDescribe_DevBuild(t *testing.T) {
	v, err := domain.ParseDescribe("v3.2.1-4-gabc1234")
	require.NoError(t, err)
	assert.False(t, v.IsRelease())
	assert.Equal(t, "3.2.1-dev.4+gabc1234", v.String())
}

func TestParseDescribe_TrimsWhitespace(t *testing.T) {
	v, err := domain.ParseDescribe("v3.2.1\n")
	require.NoError(t, err)
	assert.Equal(t, "3.2.1", v.String())
}

func TestParseDescribe_Rejects(t *testing.T) {
	for _, out := range []string{
		"",
		"3.2.1",             // missing v prefix
		"v3.2",              // not a full version
		"vX.Y.Z",            // not numeric
		"v3.2.1-4",          // distance without hash
		"v3.2.1-g1234abc-4", // wrong order
	} {
		_, err := domain.ParseDescribe(out)
		require.Error(t, err, out)
		assert.ErrorIs(t, err, domain.ErrVersionUnresolved, out)
	}
}

func TestCompare_DevDistanceOrders(t *testing.T) {
	tagged, err := domain.ParseDescribe("v3.2.1")
	require.NoError(t, err)
	near, err := domain.ParseDescribe("v3.2.1-1-gaaaaaaa")
	require.NoError(t, err)
	far, err := domain.ParseDescribe("v3.2.1-9-gbbbbbbb")
	require.NoError(t, err)
	next, err := domain.ParseDescribe("v3.3.0")
	require.NoError(t, err)

	assert.Negative(t, tagged.Compare(near))
	assert.Negative(t, near.Compare(far))
	assert.Negative(t, far.Compare(next))
	assert.Positive(t, far.Compare(near))
	assert.Zero(t, near.Compare(near))
}

func TestEqual_ByteForByteRendering(t *testing.T) {
	a, err := domain.ParseDescribe("v3.2.1-4-gabc1234")
	require.NoError(t, err)
	b, err := domain.ParseDescribe("v3.2.1-4-gabc1234")
	require.NoError(t, err)
	c, err := domain.ParseDescribe("v3.2.1-4-gdef5678")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	// Same distance but a different commit must not compare equal: the
	// rendered version embeds the hash.
	assert.False(t, a.Equal(c))
	// Compare ignores build metadata, so these still order the same.
	assert.Zero(t, a.Compare(c))
}

func TestString_ZeroValue(t *testing.T) {
	var v domain.ReleaseVersion
	assert.Empty(t, v.String())
}
