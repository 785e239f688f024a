//go:build tools

package healthassist

import (
	_ "go.uber.org/mock/mockgen"
)
