package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalStatus(t *testing.T) {
	status, err := ParseApprovalStatus("suspended")
	require.NoError(t, err)
	assert.Equal(t, ApprovalStatusSuspended, status)
	assert.False(t, status.CanLogin())
	assert.True(t, ApprovalStatusApproved.CanLogin())

	_, err = ParseApprovalStatus("deleted")
	assert.Error(t, err)
	assert.False(t, ApprovalStatus("deleted").IsValid())
}

func TestRegistrationStatus(t *testing.T) {
	status, err := ParseRegistrationStatus("pending")
	require.NoError(t, err)
	assert.True(t, status.IsValid())
	assert.Equal(t, "pending", status.String())

	_, err = ParseRegistrationStatus("")
	assert.Error(t, err)
}
