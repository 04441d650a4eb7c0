// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Terminal preview, brightest-star summary, --strict catalogue mode
// 0.2.0 - Light theme, RA/Dec grid, config file and STARCHART_* environment
// 0.1.0 - Initial release: bundled bright-star catalogue, equirectangular PNG chart
