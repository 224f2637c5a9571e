package logger

import "log/slog"

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Identifier records a raw CNPJ input under "cnpj".
func Identifier(raw string) slog.Attr {
	return slog.String("cnpj", raw)
}

// Index records the 1-based position of an entry in a batch under "index".
func Index(i int) slog.Attr {
	return slog.Int("index", i)
}

// Mode records the operation mode under "mode".
func Mode(mode string) slog.Attr {
	return slog.String("mode", mode)
}

// Count records a number of items under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
