package catalogcache

import "github.com/vmihailenco/msgpack/v5"

// Cache blobs are msgpack: compact, schemaless and already in the dependency
// graph through bun.

func encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func decode(blob []byte, v any) error {
	return msgpack.Unmarshal(blob, v)
}
