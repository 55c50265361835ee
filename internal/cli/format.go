package cli

import (
	fxerrors "github.com/jakoblorz/go-fexplorer/internal/errors"
)

func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fxerrors.InvalidArgument("format", format, "output format must be text or json")
	}
}
