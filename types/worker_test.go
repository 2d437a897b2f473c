package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleSet_GrantRevoke(t *testing.T) {
	t.Run("grant adds roles and has checks membership", func(t *testing.T) {
		rs := NewRoleSet(RoleAnnotator)

		require.True(t, rs.Has(RoleAnnotator))
		require.False(t, rs.Has(RoleReviewer))

		rs.Grant(RoleReviewer)
		require.True(t, rs.Has(RoleReviewer))
	})

	t.Run("revoke removes a role and tolerates absent roles", func(t *testing.T) {
		rs := NewRoleSet(RoleAnnotator, RoleReviewer)

		rs.Revoke(RoleReviewer)
		require.False(t, rs.Has(RoleReviewer))
		require.True(t, rs.Has(RoleAnnotator))

		// Revoking again must not panic or alter the set.
		rs.Revoke(RoleReviewer)
		require.True(t, rs.Has(RoleAnnotator))
	})

	t.Run("worker with zero roles is prunable", func(t *testing.T) {
		rs := NewRoleSet(RoleAdmin)
		require.False(t, rs.Empty())

		rs.Revoke(RoleAdmin)
		require.True(t, rs.Empty())
	})

	t.Run("a worker may hold several roles simultaneously", func(t *testing.T) {
		w := Worker{ID: "w1", Roles: NewRoleSet(RoleAnnotator, RoleReviewer)}

		require.True(t, w.CanAnnotate())
		require.True(t, w.CanReview())
	})
}

func TestRoleSet_JSON(t *testing.T) {
	rs := NewRoleSet(RoleReviewer, RoleAnnotator)

	data, err := json.Marshal(rs)
	require.NoError(t, err)
	// Sorted for deterministic output regardless of map iteration order.
	require.JSONEq(t, `["annotator","reviewer"]`, string(data))

	var decoded RoleSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, decoded.Has(RoleAnnotator))
	require.True(t, decoded.Has(RoleReviewer))
}

func TestPurpose(t *testing.T) {
	require.True(t, PurposeAnnotation.Valid())
	require.True(t, PurposeReview.Valid())
	require.False(t, Purpose("export").Valid())

	require.Equal(t, RoleAnnotator, PurposeAnnotation.Role())
	require.Equal(t, RoleReviewer, PurposeReview.Role())
}
