package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testRoster = NewRoster([]string{"Alice Smith", "Bob Jones"})

func TestForm_BasicVariant_SkipsEventCheck(t *testing.T) {
	f := NewForm(nil)
	assert.False(t, f.RequiresEvent())

	f.EnterName("  ALICE smith ")
	assert.NoError(t, f.Submit(testRoster))
	f.Complete(nil)

	assert.Equal(t, StateSuccess, f.State())
	assert.Equal(t, "  ALICE smith ", f.Name()) // raw submission kept
}

func TestForm_NotFound(t *testing.T) {
	f := NewForm(nil)
	f.EnterName("Carol")

	err := f.Submit(testRoster)
	assert.ErrorIs(t, err, ErrNameNotFound)
	assert.Equal(t, StateErrorNameNotFound, f.State())
}

func TestForm_EmptyNameIsNotFound(t *testing.T) {
	f := NewForm(nil)
	f.EnterName("   ")

	assert.ErrorIs(t, f.Submit(testRoster), ErrNameNotFound)
}

func TestForm_Extended_EventCheckPrecedesNameCheck(t *testing.T) {
	f := NewForm([]string{"Drive 2024"})
	assert.True(t, f.RequiresEvent())

	// valid name, no event
	f.EnterName("Alice Smith")
	assert.ErrorIs(t, f.Submit(testRoster), ErrNoEvent)
	assert.Equal(t, StateErrorNoEvent, f.State())

	// invalid name, no event: still the event notice
	f.EnterName("Carol")
	assert.ErrorIs(t, f.Submit(testRoster), ErrNoEvent)
}

func TestForm_Extended_UnknownEventIsNoSelection(t *testing.T) {
	f := NewForm([]string{"Drive 2024"})
	f.SelectEvent("Other")
	assert.Equal(t, StateNoEventSelected, f.State())
	assert.Empty(t, f.Event())
}

func TestForm_Extended_FullFlowAndBack(t *testing.T) {
	f := NewForm([]string{"Drive 2024"})
	assert.Equal(t, StateNoEventSelected, f.State())

	f.SelectEvent("Drive 2024")
	assert.Equal(t, StateEventSelected, f.State())

	f.EnterName("bob jones")
	assert.Equal(t, StateNameEntered, f.State())
	assert.NoError(t, f.Submit(testRoster))

	f.Complete(errors.New("template missing"))
	assert.Equal(t, StateErrorRender, f.State())

	f.Back()
	assert.Equal(t, StateNoEventSelected, f.State())
	assert.Empty(t, f.Event())
	assert.Empty(t, f.Name())
}

func TestFormState_String(t *testing.T) {
	assert.Equal(t, "error_no_event", StateErrorNoEvent.String())
	assert.Equal(t, "unknown", FormState(42).String())
}
