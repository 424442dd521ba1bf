package model

import "strings"

// Compact role codes used throughout the scanner.
const (
	RoleStatusBar = "statusbar"
	RoleWindow    = "window"
	RoleText      = "txt"
	RolePane      = "pane"
	RoleOther     = "other"
)

// RoleMap maps native accessibility role names to compact role codes.
// Duxbury is a Win32 application, so this covers the MSAA role names the
// screen reader reports for its windows plus the UIA control type names
// newer toolkits expose for the same elements.
var RoleMap = map[string]string{
	"ROLE_SYSTEM_STATUSBAR":  RoleStatusBar,
	"StatusBar":              RoleStatusBar,
	"ROLE_SYSTEM_WINDOW":     RoleWindow,
	"Window":                 RoleWindow,
	"ROLE_SYSTEM_STATICTEXT": RoleText,
	"ROLE_SYSTEM_TEXT":       RoleText,
	"Text":                   RoleText,
	"Edit":                   RoleText,
	"ROLE_SYSTEM_PANE":       RolePane,
	"Pane":                   RolePane,
}

// MapRole converts a raw accessibility role name to a compact code.
func MapRole(native string) string {
	if code, ok := RoleMap[native]; ok {
		return code
	}
	return RoleOther
}

// StatusBarClasses are window class names that mark a status bar even
// when the node's role is a generic pane or text. Matched
// case-insensitively.
var StatusBarClasses = map[string]bool{
	"msctls_statusbar32": true,
	"statusbarwindow32":  true,
	"tstatusbar":         true,
}

// IsStatusBarClass reports whether the given window class name is a known
// status-bar class.
func IsStatusBarClass(class string) bool {
	return StatusBarClasses[strings.ToLower(class)]
}
