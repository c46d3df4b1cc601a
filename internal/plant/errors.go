package plant

import "errors"

// ErrRepeat indicates a negative repeat count.
var ErrRepeat = errors.New("plant: repeat must not be negative")
