package checkout

import "errors"

var ErrPriceRequired = errors.New("price id is required")
