//go:build linux

package pins

import "github.com/DrJosh9000/sevenseg"

var _ sevenseg.OutPin = (*Line)(nil)
