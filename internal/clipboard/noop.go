package clipboard

import "github.com/dmitrijs2005/lockbox/internal/common"

// Disabled is used when clipboard access is turned off in config. Every
// write reports the clipboard as unavailable.
type Disabled struct{}

func NewDisabled() Disabled { return Disabled{} }

func (Disabled) Write(string) error { return common.ErrClipboardUnavailable }
