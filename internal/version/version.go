// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Print-and-play sheets, cardbacks, constellation quiz TUI
// 0.3.0 - Universal sky maps: equatorial Gall panels, polar caps, graticule
// 0.2.0 - Observer sky view, visibility report, B-V star colors
// 0.1.0 - Initial release: constellation cards, stereographic framing,
//         aspect-ratio search, Hipparcos/Stellarium loaders
