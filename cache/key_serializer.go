package cache

import "github.com/goliatone/go-breed-cache/breed"

// defaultKeySerializer keys entries by the normalized breed name.
type defaultKeySerializer struct{}

// NewDefaultKeySerializer creates a new instance of the default key serializer.
func NewDefaultKeySerializer() KeySerializer {
	return defaultKeySerializer{}
}

// SerializeKey trims and lower-cases breed.
func (defaultKeySerializer) SerializeKey(b string) string {
	return breed.NormalizeKey(b)
}
