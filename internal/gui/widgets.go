package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MinSized wraps content so it never lays out smaller than floor.
type MinSized struct {
	widget.BaseWidget
	content fyne.CanvasObject
	floor   fyne.Size
}

func NewMinSized(content fyne.CanvasObject, floor fyne.Size) *MinSized {
	m := &MinSized{content: content, floor: floor}
	m.ExtendBaseWidget(m)
	return m
}

func (m *MinSized) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(m.content)
}

// MinSize is the larger of the content's own minimum and floor, per axis.
func (m *MinSized) MinSize() fyne.Size {
	return m.content.MinSize().Max(m.floor)
}

// Stepper is an integer input with -/+ buttons, bounded to [min, max].
type Stepper struct {
	widget.BaseWidget
	value    int
	min, max int
	suffix   string

	label *widget.Label
	dec   *widget.Button
	inc   *widget.Button

	OnChanged func(int)
}

func NewStepper(value, min, max int, suffix string) *Stepper {
	s := &Stepper{min: min, max: max, suffix: suffix}
	s.label = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	s.dec = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() { s.SetValue(s.value - 1) })
	s.inc = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() { s.SetValue(s.value + 1) })
	s.value = s.clamp(value)
	s.update()
	s.ExtendBaseWidget(s)
	return s
}

func (s *Stepper) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, s.dec, s.inc, s.label))
}

// Value returns the current value.
func (s *Stepper) Value() int { return s.value }

// SetValue clamps v into range and calls OnChanged when the value changes.
func (s *Stepper) SetValue(v int) {
	v = s.clamp(v)
	if v == s.value {
		return
	}
	s.value = v
	s.update()
	if s.OnChanged != nil {
		s.OnChanged(v)
	}
}

// Scrolled steps the value with the mouse wheel.
func (s *Stepper) Scrolled(ev *fyne.ScrollEvent) {
	switch {
	case ev.Scrolled.DY > 0:
		s.SetValue(s.value + 1)
	case ev.Scrolled.DY < 0:
		s.SetValue(s.value - 1)
	}
}

func (s *Stepper) clamp(v int) int {
	return max(s.min, min(v, s.max))
}

func (s *Stepper) update() {
	s.label.SetText(fmt.Sprintf("%d %s", s.value, s.suffix))
	if s.value <= s.min {
		s.dec.Disable()
	} else {
		s.dec.Enable()
	}
	if s.value >= s.max {
		s.inc.Disable()
	} else {
		s.inc.Enable()
	}
}
