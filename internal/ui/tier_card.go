package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/android-template-generator/internal/catalog"
	"github.com/ytget/android-template-generator/internal/i18n"
)

// Catalog status labels that get a dedicated badge color
const (
	StatusReleased = "Released"
)

// TierCard shows one template tier with its status and a select button
type TierCard struct {
	descriptor   *catalog.Descriptor
	localization *i18n.Localization
	onSelect     func(*catalog.Descriptor)

	card      *widget.Card
	badge     *widget.Label
	selectBtn *widget.Button
	selected  bool
}

// NewTierCard creates a card for a catalog descriptor
func NewTierCard(d *catalog.Descriptor, localization *i18n.Localization, onSelect func(*catalog.Descriptor)) *TierCard {
	tc := &TierCard{
		descriptor:   d,
		localization: localization,
		onSelect:     onSelect,
	}

	tc.badge = widget.NewLabel(d.Status)
	tc.badge.TextStyle = fyne.TextStyle{Bold: true}
	tc.badge.Importance = badgeImportance(d)

	description := widget.NewLabel(d.Description)
	description.Wrapping = fyne.TextWrapWord

	tc.selectBtn = widget.NewButton("", func() {
		if tc.onSelect != nil {
			tc.onSelect(tc.descriptor)
		}
	})

	tc.card = widget.NewCard(d.Title, "", container.NewVBox(
		container.NewHBox(widget.NewIcon(TemplateIcon(d.Icon)), tc.badge),
		description,
		tc.selectBtn,
	))

	tc.Refresh()
	return tc
}

// Container returns the card widget
func (tc *TierCard) Container() fyne.CanvasObject {
	return tc.card
}

// SetSelected marks the card as the current template
func (tc *TierCard) SetSelected(selected bool) {
	if tc.selected == selected {
		return
	}
	tc.selected = selected
	tc.Refresh()
}

// Refresh re-applies texts and button state
func (tc *TierCard) Refresh() {
	switch {
	case !tc.descriptor.Available:
		tc.selectBtn.SetText(tc.localization.GetText(i18n.KeyUnavailable))
		tc.selectBtn.Importance = widget.LowImportance
		tc.selectBtn.Disable()
	case tc.selected:
		tc.selectBtn.SetText(IconCheck + " " + tc.localization.GetText(i18n.KeySelected))
		tc.selectBtn.Importance = widget.HighImportance
		tc.selectBtn.Enable()
	default:
		tc.selectBtn.SetText(tc.localization.GetText(i18n.KeySelect))
		tc.selectBtn.Importance = widget.MediumImportance
		tc.selectBtn.Enable()
	}
	tc.selectBtn.Refresh()
}

func badgeImportance(d *catalog.Descriptor) widget.Importance {
	switch {
	case !d.Available:
		return widget.LowImportance
	case d.Status == StatusReleased:
		return widget.SuccessImportance
	default:
		return widget.WarningImportance
	}
}
