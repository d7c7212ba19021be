// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithInterrupt returns a Context that is done when an interrupt or
// termination signal is received. The returned closer stops signal delivery
// and must be deferred.
func WithInterrupt(ctx context.Context) (context.Context, func()) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
