package util

import (
	"fmt"

	"github.com/vmihailenco/msgpack"
)

// ToByteSlice marshals obj into a buffer of exactly size bytes, padding
// with zeroes. Fails if the encoding does not fit.
func ToByteSlice[T any](obj T, size int) ([]byte, error) {
	res := make([]byte, size)

	data, err := msgpack.Marshal(obj)
	if err != nil {
		return nil, err
	}
	if len(data) > size {
		return nil, fmt.Errorf("encoded size %d exceeds %d bytes", len(data), size)
	}
	copy(res, data)

	return res, nil
}

func ToStruct[T any](data []byte) (T, error) {
	var res T

	if err := msgpack.Unmarshal(data, &res); err != nil {
		return res, err
	}

	return res, nil
}
