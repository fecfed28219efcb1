package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// isMobileDevice reports whether the app runs on a phone or tablet
func isMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// cardColumns returns how many template cards fit in one row
func cardColumns() int {
	if isMobileDevice() {
		return MobileColumns
	}
	return DesktopColumns
}

// newCardGrid lays template cards out in rows that adapt to the device
func newCardGrid(cards ...fyne.CanvasObject) *fyne.Container {
	return container.NewAdaptiveGrid(cardColumns(), cards...)
}

// orientationAware picks the landscape layout on rotated mobile devices
func orientationAware(portrait, landscape fyne.CanvasObject) fyne.CanvasObject {
	if !isMobileDevice() {
		return landscape
	}
	switch fyne.CurrentDevice().Orientation() {
	case fyne.OrientationHorizontalLeft, fyne.OrientationHorizontalRight:
		return landscape
	default:
		return portrait
	}
}
