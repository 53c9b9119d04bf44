package payment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedDetails struct {
	calls int
}

func (f *fixedDetails) PaymentDetails() Details {
	f.calls++
	return Details{Amount: 250.5 * float64(f.calls), Reference: "REF-00000" + string(rune('0'+f.calls))}
}

func testChannels() []Channel {
	return []Channel{
		{ID: "fpx-mb2u", Name: "Maybank2u", Code: "MB2U", Status: "active"},
		{ID: "fpx-cimb", Name: "CIMB Clicks", Code: "CIMB", Status: "active"},
		{ID: "fpx-down", Name: "Down Bank", Code: "DWN", Status: "inactive"},
	}
}

func TestDefaultChannels(t *testing.T) {
	chans := DefaultChannels()
	require.Len(t, chans, 15)
	require.Equal(t, "fpx-mb2u", chans[0].ID)
	require.Equal(t, "BKRM", chans[14].Code)
	for _, c := range chans {
		require.True(t, c.Active(), c.ID)
	}
}

func TestParseChannelsRejectsDuplicates(t *testing.T) {
	_, err := ParseChannels([]byte("channels:\n  - {id: a, name: A}\n  - {id: a, name: B}\n"))
	require.Error(t, err)
	_, err = ParseChannels([]byte("channels:\n  - {name: A}\n"))
	require.Error(t, err)
}

func TestSelectIsSingleSelection(t *testing.T) {
	s := NewSelector(testChannels(), nil)
	require.False(t, s.CanProceed())

	require.True(t, s.Select("fpx-mb2u"))
	require.True(t, s.Select("fpx-cimb"))
	require.True(t, s.IsSelected("fpx-cimb"))
	require.False(t, s.IsSelected("fpx-mb2u"))
	require.True(t, s.CanProceed())

	msg, err := s.Proceed()
	require.NoError(t, err)
	require.Equal(t, "Redirecting to CIMB Clicks (CIMB) payment gateway...", msg)
}

func TestInactiveAndUnknownChannelsAreNotSelectable(t *testing.T) {
	s := NewSelector(testChannels(), nil)
	require.True(t, s.Select("fpx-mb2u"))
	require.False(t, s.Select("fpx-down"))
	require.False(t, s.Select("nope"))
	require.True(t, s.IsSelected("fpx-mb2u"))
}

func TestCancelClearsSelection(t *testing.T) {
	s := NewSelector(testChannels(), nil)
	s.Select("fpx-mb2u")
	s.Cancel()
	require.False(t, s.CanProceed())
	_, err := s.Proceed()
	require.True(t, errors.Is(err, ErrNoChannel))
}

func TestActivateRegeneratesDetails(t *testing.T) {
	src := &fixedDetails{}
	s := NewSelector(testChannels(), src)
	s.Select("fpx-cimb")

	s.Activate()
	require.False(t, s.CanProceed())
	first := s.Details()
	s.Activate()
	require.NotEqual(t, first, s.Details())
	require.Equal(t, 2, src.calls)
}

func TestCursorSelection(t *testing.T) {
	s := NewSelector(testChannels(), nil)
	s.MoveCursor(-1)
	require.Equal(t, 2, s.Cursor())
	require.False(t, s.SelectCursor(), "inactive card under cursor")
	s.MoveCursor(-1)
	require.True(t, s.SelectCursor())
	require.True(t, s.IsSelected("fpx-cimb"))
}

func TestChannelClassName(t *testing.T) {
	c := testChannels()
	require.Equal(t, "fpx-channel-card active selected", c[0].ClassName(true))
	require.Equal(t, "fpx-channel-card inactive", c[2].ClassName(false))
}
