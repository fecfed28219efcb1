package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Catalog icon names
const (
	IconNameCode   = "code"
	IconNameLayers = "layers"
	IconNameRocket = "rocket"
)

// TemplateIcon maps a catalog icon name to a theme resource
func TemplateIcon(name string) fyne.Resource {
	switch name {
	case IconNameCode:
		return theme.ComputerIcon()
	case IconNameLayers:
		return theme.StorageIcon()
	case IconNameRocket:
		return theme.UploadIcon()
	default:
		return theme.FileApplicationIcon()
	}
}

// NodeIcon returns the icon of a folder tree row
func NodeIcon(isFolder, open bool) fyne.Resource {
	if !isFolder {
		return theme.FileIcon()
	}
	if open {
		return theme.FolderOpenIcon()
	}
	return theme.FolderIcon()
}
