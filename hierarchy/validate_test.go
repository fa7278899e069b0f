package hierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/hierarchy"
)

// TestValidateIntegrity_Healthy passes a well-formed tree untouched.
func TestValidateIntegrity_Healthy(t *testing.T) {
	m, a, err := hierarchy.NewManager().CreateContext(core.Cut, "", "a")
	require.NoError(t, err)
	m, _, err = m.CreateContext(core.Cut, a.ID, "b")
	require.NoError(t, err)

	require.Empty(t, m.ValidateIntegrity())
}

// TestValidateIntegrity_BadDepth detects a context whose stored depth does
// not match its parent chain. AddContext takes depth as given, which is the
// injection point.
func TestValidateIntegrity_BadDepth(t *testing.T) {
	m := hierarchy.NewManager()
	bad := core.NewContext(core.Cut, m.RootID(), 5)
	m, err := m.AddContext(bad)
	require.NoError(t, err)

	errs := m.ValidateIntegrity()
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "depth 5, want 1")
}

// TestAddContext_UnknownParent rejects orphan registration up front.
func TestAddContext_UnknownParent(t *testing.T) {
	m := hierarchy.NewManager()
	orphan := core.NewContext(core.Cut, "nope", 1)
	_, err := m.AddContext(orphan)
	require.ErrorIs(t, err, hierarchy.ErrContextNotFound)
}
