package payment

import (
	"errors"
	"fmt"
)

var ErrNoChannel = errors.New("no payment channel selected")

// Details are the placeholder amount and reference shown on the form.
type Details struct {
	Amount    float64
	Reference string
}

// DetailsSource produces fresh display details each time the page opens.
type DetailsSource interface {
	PaymentDetails() Details
}

type Selector struct {
	channels []Channel
	selected int
	cursor   int
	details  Details
	source   DetailsSource
}

func NewSelector(channels []Channel, source DetailsSource) *Selector {
	return &Selector{channels: channels, selected: -1, source: source}
}

func (s *Selector) Channels() []Channel {
	return s.channels
}

// Select marks the channel with the given id, replacing any previous
// selection. Unknown and inactive channels are ignored.
func (s *Selector) Select(id string) bool {
	for i, c := range s.channels {
		if c.ID != id {
			continue
		}
		if !c.Active() {
			return false
		}
		s.selected = i
		s.cursor = i
		return true
	}
	return false
}

func (s *Selector) Selected() (Channel, bool) {
	if s.selected < 0 || s.selected >= len(s.channels) {
		return Channel{}, false
	}
	return s.channels[s.selected], true
}

func (s *Selector) IsSelected(id string) bool {
	c, ok := s.Selected()
	return ok && c.ID == id
}

func (s *Selector) CanProceed() bool {
	_, ok := s.Selected()
	return ok
}

// Proceed returns the gateway redirect notice for the selected channel.
func (s *Selector) Proceed() (string, error) {
	c, ok := s.Selected()
	if !ok {
		return "", ErrNoChannel
	}
	return fmt.Sprintf("Redirecting to %s (%s) payment gateway...", c.Name, c.Code), nil
}

// Cancel clears the selection. Navigating away is the caller's concern.
func (s *Selector) Cancel() {
	s.selected = -1
}

// Activate runs when the payment page becomes visible: the selection is
// cleared and new display details are drawn.
func (s *Selector) Activate() {
	s.selected = -1
	s.cursor = 0
	if s.source != nil {
		s.details = s.source.PaymentDetails()
	}
}

func (s *Selector) Details() Details {
	return s.details
}

func (s *Selector) Cursor() int {
	return s.cursor
}

func (s *Selector) MoveCursor(delta int) {
	n := len(s.channels)
	if n == 0 {
		return
	}
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// SelectCursor selects the channel under the cursor.
func (s *Selector) SelectCursor() bool {
	if s.cursor < 0 || s.cursor >= len(s.channels) {
		return false
	}
	return s.Select(s.channels[s.cursor].ID)
}
