package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"trash-manager/internal/config"
	"trash-manager/internal/locale"
)

// buildContent lays out the control panel on the left and the console on the right.
func (s *AppState) buildContent() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(s.p.Sprintf(locale.LabelPreserve), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	s.stepper = NewStepper(int(s.state.Settings.PreserveDays), config.MinPreserveDays, config.MaxPreserveDays, s.p.Sprintf(locale.LabelDays))
	s.stepper.OnChanged = func(days int) {
		s.state.Settings.SetPreserveDays(days)
	}

	s.analyzeBtn = widget.NewButton(s.p.Sprintf(locale.ButtonAnalyze), s.analyze)
	s.analyzeBtn.Importance = widget.HighImportance

	s.deleteBtn = widget.NewButton(s.p.Sprintf(locale.ButtonDelete), s.deletePermanently)
	s.deleteBtn.Importance = widget.DangerImportance

	s.clearBtn = widget.NewButton(s.p.Sprintf(locale.ButtonClear), s.clearConsole)

	s.statusLabel = widget.NewLabel("")
	s.statusLabel.Alignment = fyne.TextAlignCenter

	controls := container.NewVBox(
		title,
		s.stepper,
		widget.NewSeparator(),
		s.analyzeBtn,
		s.deleteBtn,
		widget.NewSeparator(),
		s.clearBtn,
		layout.NewSpacer(),
		s.statusLabel,
	)

	s.logView = widget.NewLabel("")
	s.logView.TextStyle = fyne.TextStyle{Monospace: true}
	s.logScroll = container.NewScroll(s.logView)

	return container.NewBorder(nil, nil, NewMinSized(controls, fyne.NewSize(200, 0)), nil, s.logScroll)
}
