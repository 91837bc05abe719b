package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asciify.dev/pkg/asciify/internal/domain"
	m "asciify.dev/pkg/asciify/internal/model"
)

// fakeWorkflow records the arguments the commands hand to the domain layer.
type fakeWorkflow struct {
	runArgs  *domain.RunArgs
	listArgs *domain.RunArgs
	diffArgs *domain.RunArgs
}

func (f *fakeWorkflow) Run(_ context.Context, args domain.RunArgs) (m.RunSummary, error) {
	f.runArgs = &args
	return m.RunSummary{}, nil
}

func (f *fakeWorkflow) List(_ context.Context, args domain.RunArgs) error {
	f.listArgs = &args
	return nil
}

func (f *fakeWorkflow) Diff(_ context.Context, args domain.RunArgs) error {
	f.diffArgs = &args
	return nil
}

func swapWorkflow(t *testing.T) *fakeWorkflow {
	t.Helper()

	fake := &fakeWorkflow{}
	original := workflow
	workflow = fake

	t.Cleanup(func() { workflow = original })

	return fake
}

func TestRunCmd_PassesArgs(t *testing.T) {
	fake := swapWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"run", "--parallel", "2", "--dry-run", "src", "include"})
	err := cmd.Execute()
	require.NoError(t, err)

	require.NotNil(t, fake.runArgs)
	assert.Equal(t, []m.Path{"src", "include"}, fake.runArgs.Paths)
	assert.Equal(t, 2, fake.runArgs.Parallel)
	assert.True(t, fake.runArgs.DryRun)
	assert.NotEmpty(t, fake.runArgs.Extensions, "default extensions should flow from config")
}

func TestListCmd_PassesArgs(t *testing.T) {
	fake := swapWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"list", "src"})
	err := cmd.Execute()
	require.NoError(t, err)

	require.NotNil(t, fake.listArgs)
	assert.Equal(t, []m.Path{"src"}, fake.listArgs.Paths)
}

func TestDiffCmd_PassesArgs(t *testing.T) {
	fake := swapWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newDiffCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"diff"})
	err := cmd.Execute()
	require.NoError(t, err)

	require.NotNil(t, fake.diffArgs)
	assert.Empty(t, fake.diffArgs.Paths)
}
