package commands_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func mustUID(t *testing.T, s string) kernel.UID {
	t.Helper()
	uid, err := kernel.UIDFromString(s)
	require.NoError(t, err)
	return uid
}

func mustUIDs(t *testing.T, values ...string) []kernel.UID {
	t.Helper()
	uids, err := kernel.UIDsFromStrings(values)
	require.NoError(t, err)
	return uids
}
