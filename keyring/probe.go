package keyring

import (
	"context"
)

// Priority reports the backend's suitability for automatic selection by a
// password-store dispatcher: 0.5 when Google API credentials are resolvable
// (the backend is viable, but a native OS credential store should still win),
// 0 when they are not. The probe never errors - an unusable backend simply
// scores 0.
func Priority(ctx context.Context, cfg Config) float64 {
	if _, err := resolveOptions(ctx, cfg); err != nil {
		return 0
	}

	return 0.5
}
