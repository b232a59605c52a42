package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/dmitrijs2005/lockbox/internal/common"
)

// System writes to the OS clipboard.
type System struct{}

func NewSystem() System { return System{} }

func (System) Write(text string) error {
	if clipboard.Unsupported {
		return common.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", common.ErrClipboardUnavailable, err)
	}
	return nil
}
