package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// fail reports err to the user. Validation problems are shown as-is; any
// other failure is logged and replaced by notice.
func (a *App) fail(ctx context.Context, err error, notice string) error {
	if errors.Is(err, common.ErrValidation) {
		msg := strings.TrimPrefix(err.Error(), common.ErrValidation.Error()+": ")
		fmt.Fprintln(a.out, "Error:", msg)
		return err
	}
	a.log.Error(ctx, notice, "error", err)
	fmt.Fprintln(a.out, notice)
	return err
}
