//go:build darwin

package cmd

import "golang.design/x/hotkey"

// modAlt is the platform modifier spelled "alt" in combo strings.
const modAlt = hotkey.ModOption
