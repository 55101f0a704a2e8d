//go:build tools

package tools

import (
	_ "gioui.org/cmd/gogio"
)
