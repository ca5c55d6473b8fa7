//go:build tools

package geoshift

import (
	_ "github.com/dmarkham/enumer"
)
