package tasklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexamibco/tudu/internal/model"
	"github.com/alexamibco/tudu/internal/tasklist"
)

func TestAddAppendsInOrder(t *testing.T) {
	l := tasklist.New()

	first, err := l.Add("Buy milk")
	require.NoError(t, err)
	second, err := l.Add("Pay bills")
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.Completed)

	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Buy milk", all[0].Text)
	assert.Equal(t, "Pay bills", all[1].Text)
}

func TestAddTrimsText(t *testing.T) {
	l := tasklist.New()

	task, err := l.Add("  Water plants  ")
	require.NoError(t, err)
	assert.Equal(t, "Water plants", task.Text)
}

func TestAddRejectsEmptyText(t *testing.T) {
	l := tasklist.New()
	_, err := l.Add("keep me")
	require.NoError(t, err)

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := l.Add(text)
		assert.ErrorIs(t, err, tasklist.ErrEmptyText)
	}

	// Collection unchanged after the failed adds
	assert.Equal(t, 1, l.Len())
}

func TestTogglePairRestoresState(t *testing.T) {
	l := tasklist.New()
	task, err := l.Add("Buy milk")
	require.NoError(t, err)

	toggled, err := l.Toggle(task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = l.Toggle(task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestToggleUnknownID(t *testing.T) {
	l := tasklist.New()
	_, err := l.Toggle("nope")
	assert.ErrorIs(t, err, tasklist.ErrNotFound)
}

func TestEditChangesOnlyText(t *testing.T) {
	l := tasklist.New()
	_, err := l.Add("Buy milk")
	require.NoError(t, err)
	task, err := l.Add("Pay bills")
	require.NoError(t, err)
	_, err = l.Toggle(task.ID)
	require.NoError(t, err)

	edited, err := l.Edit(task.ID, "Pay rent")
	require.NoError(t, err)
	assert.Equal(t, task.ID, edited.ID)
	assert.Equal(t, "Pay rent", edited.Text)
	assert.True(t, edited.Completed)

	// Position in the list is unchanged
	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Pay rent", all[1].Text)
}

func TestEditValidation(t *testing.T) {
	l := tasklist.New()
	task, err := l.Add("Buy milk")
	require.NoError(t, err)

	_, err = l.Edit(task.ID, "   ")
	assert.ErrorIs(t, err, tasklist.ErrEmptyText)

	_, err = l.Edit("nope", "new text")
	assert.ErrorIs(t, err, tasklist.ErrNotFound)

	// A no-op edit with identical text is permitted
	edited, err := l.Edit(task.ID, "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", edited.Text)
}

func TestDeleteRemovesPermanently(t *testing.T) {
	l := tasklist.New()
	first, err := l.Add("Buy milk")
	require.NoError(t, err)
	second, err := l.Add("Pay bills")
	require.NoError(t, err)

	require.NoError(t, l.Delete(first.ID))
	assert.Equal(t, 1, l.Len())

	// Every command referencing the deleted id now fails
	_, err = l.Toggle(first.ID)
	assert.ErrorIs(t, err, tasklist.ErrNotFound)
	_, err = l.Edit(first.ID, "resurrect")
	assert.ErrorIs(t, err, tasklist.ErrNotFound)
	err = l.Delete(first.ID)
	assert.ErrorIs(t, err, tasklist.ErrNotFound)
	_, err = l.Get(first.ID)
	assert.ErrorIs(t, err, tasklist.ErrNotFound)

	// The survivor keeps its id
	got, err := l.Get(second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pay bills", got.Text)
}

func TestSetFilterRejectsUnknown(t *testing.T) {
	l := tasklist.New()

	require.NoError(t, l.SetFilter(model.FilterActive))
	assert.Equal(t, model.FilterActive, l.Filter())

	err := l.SetFilter(model.Filter("done"))
	assert.ErrorIs(t, err, tasklist.ErrUnknownFilter)
	// Failed command leaves the previous filter in place
	assert.Equal(t, model.FilterActive, l.Filter())
}

func TestVisibleProjection(t *testing.T) {
	l := tasklist.New()
	milk, err := l.Add("Buy milk")
	require.NoError(t, err)
	bills, err := l.Add("Pay bills")
	require.NoError(t, err)
	_, err = l.Toggle(bills.ID)
	require.NoError(t, err)

	require.NoError(t, l.SetFilter(model.FilterActive))
	visible := l.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, milk.ID, visible[0].ID)
	assert.False(t, visible[0].Completed)

	require.NoError(t, l.SetFilter(model.FilterCompleted))
	visible = l.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, bills.ID, visible[0].ID)
	assert.True(t, visible[0].Completed)

	require.NoError(t, l.SetFilter(model.FilterAll))
	visible = l.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, milk.ID, visible[0].ID)
	assert.Equal(t, bills.ID, visible[1].ID)
}

func TestVisibleIsPure(t *testing.T) {
	l := tasklist.New()
	_, err := l.Add("Buy milk")
	require.NoError(t, err)

	// Repeated calls return the same projection
	assert.Equal(t, l.Visible(), l.Visible())

	// Mutating the returned snapshot does not touch the collection
	snapshot := l.Visible()
	snapshot[0].Text = "clobbered"
	snapshot[0].Completed = true

	all := l.All()
	assert.Equal(t, "Buy milk", all[0].Text)
	assert.False(t, all[0].Completed)
}

func TestToggleAll(t *testing.T) {
	l := tasklist.New()
	_, err := l.Add("Buy milk")
	require.NoError(t, err)
	bills, err := l.Add("Pay bills")
	require.NoError(t, err)
	_, err = l.Toggle(bills.ID)
	require.NoError(t, err)

	// Mixed state: everything becomes completed
	l.ToggleAll()
	assert.Equal(t, 0, l.ActiveCount())

	// All completed: everything becomes active again
	l.ToggleAll()
	assert.Equal(t, 2, l.ActiveCount())
}

func TestClearCompleted(t *testing.T) {
	l := tasklist.New()
	milk, err := l.Add("Buy milk")
	require.NoError(t, err)
	bills, err := l.Add("Pay bills")
	require.NoError(t, err)
	walk, err := l.Add("Walk dog")
	require.NoError(t, err)

	_, err = l.Toggle(milk.ID)
	require.NoError(t, err)
	_, err = l.Toggle(walk.ID)
	require.NoError(t, err)

	removed := l.ClearCompleted()
	assert.Equal(t, 2, removed)

	all := l.All()
	require.Len(t, all, 1)
	assert.Equal(t, bills.ID, all[0].ID)

	// Nothing completed left to clear
	assert.Equal(t, 0, l.ClearCompleted())
}

func TestIDsStayValidAcrossCommands(t *testing.T) {
	l := tasklist.New()

	var ids []string
	for _, text := range []string{"one", "two", "three", "four"} {
		task, err := l.Add(text)
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}

	require.NoError(t, l.Delete(ids[1]))

	// Every surviving id still resolves regardless of interleaved commands
	for _, id := range []string{ids[0], ids[2], ids[3]} {
		_, err := l.Toggle(id)
		require.NoError(t, err)
		_, err = l.Edit(id, "renamed")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, l.Len())
}
