package codec

import "errors"

var (
	// ErrDecode indicates a document that cannot become a tree.
	ErrDecode = errors.New("codec: cannot decode")
	// ErrEncode indicates a tree the target format cannot represent.
	ErrEncode = errors.New("codec: cannot encode")
	// ErrFormat indicates an unknown file extension or format name.
	ErrFormat = errors.New("codec: unknown format")
)
