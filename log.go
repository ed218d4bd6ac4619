// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

import "go.uber.org/zap"

// logger backs the package's diagnostic output. Defaults to a no-op logger
// so the core stays allocation-free on the hot path until a caller opts in.
var logger = zap.NewNop()

// SetLogger overrides the package-level logger used for allocator-registry
// imbalance warnings and virtual memory commit/decommit events. Passing nil
// restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}
