//go:build linux

package cmd

import "golang.design/x/hotkey"

// modAlt is the platform modifier spelled "alt" in combo strings.
// X11 maps Alt to Mod1.
const modAlt = hotkey.Mod1
