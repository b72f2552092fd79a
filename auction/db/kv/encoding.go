package kv

import (
	"encoding/json"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

func decode(data []byte, dst interface{}) error {
	data, err := snappy.Decode(nil, data)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return err
	}
	return nil
}

func encode(msg interface{}) ([]byte, error) {
	if msg == nil {
		return nil, errors.New("cannot encode nil value")
	}
	enc, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, enc), nil
}
