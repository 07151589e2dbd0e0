// Package header extracts a semantic version from the #define macros of a
// C/C++ header such as:
//
//	#define XF_VERSION_MAJOR 1
//	#define XF_VERSION_MINOR 1
//	#define XF_VERSION_PATCH 0
//
// Macro lookup is a pure function of the header text; Reader adds the file
// access on top of it.
package header
