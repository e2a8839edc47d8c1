// Package format renders saves and sizes for display.
//
// Sizes use binary units with one decimal ("12.3 MiB"); byte counts below
// 1 KiB are printed exactly ("512 B"). Dates use the local time zone.
package format
