package qrmatrix

import "log/slog"

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used to report mask selection.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}
