package suggestion

import "errors"

var ErrInvalidDateRange = errors.New("invalid date range")
