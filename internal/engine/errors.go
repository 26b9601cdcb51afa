package engine

import (
	"fmt"

	"github.com/osse101/CaseOpener_Go/internal/domain"
)

func tradeUpError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidTradeUp, fmt.Sprintf(format, args...))
}
