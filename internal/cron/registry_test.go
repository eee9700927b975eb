package cron

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJob struct {
	name string
}

func (s *stubJob) Name() string              { return s.name }
func (s *stubJob) Run(context.Context) error { return nil }

func TestRegistryKeepsOrderAndCopies(t *testing.T) {
	registry := NewRegistry()
	purge := &stubJob{name: "session-purge"}
	audit := &stubJob{name: "attendance-audit"}
	require.NoError(t, registry.Register(purge))
	require.NoError(t, registry.Register(audit))

	jobs := registry.Jobs()
	require.Len(t, jobs, 2)
	assert.Same(t, purge, jobs[0])
	assert.Same(t, audit, jobs[1])
	assert.Equal(t, []string{"session-purge", "attendance-audit"}, registry.Names())

	jobs[0] = nil
	assert.NotNil(t, registry.Jobs()[0])
}

func TestRegistryRejectsInvalidJobs(t *testing.T) {
	registry := NewRegistry(&stubJob{name: "session-purge"})

	assert.Error(t, registry.Register(nil))
	assert.Error(t, registry.Register(&stubJob{name: "  "}))
	assert.Error(t, registry.Register(&stubJob{name: "session-purge"}))
	assert.Len(t, registry.Jobs(), 1)
}

func TestNewRegistrySkipsDuplicates(t *testing.T) {
	registry := NewRegistry(&stubJob{name: "a"}, nil, &stubJob{name: "a"}, &stubJob{name: "b"})
	assert.Equal(t, []string{"a", "b"}, registry.Names())
}
