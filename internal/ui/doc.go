package ui

// Package ui contains the Fyne desktop interface: template cards, the folder
// tree preview, the customize dialog and settings. It renders controller
// snapshots and forwards user input to the controller. All UI strings are
// localized via i18n.Localization.
