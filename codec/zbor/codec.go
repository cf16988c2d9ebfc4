// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package zbor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// Codec encodes journal records as canonical CBOR compressed with Zstandard.
// Decoding is strict: a record holding fields the target type does not know,
// such as one written by a different version of a step record, is rejected
// instead of being partially restored.
type Codec struct {
	encoder      cbor.EncMode
	decoder      cbor.DecMode
	compressor   *zstd.Encoder
	decompressor *zstd.Decoder
}

// NewCodec creates a new Codec. It panics if the static options are invalid.
func NewCodec() *Codec {

	encOptions := cbor.CanonicalEncOptions()
	encOptions.Time = cbor.TimeRFC3339Nano
	encoder, err := encOptions.EncMode()
	if err != nil {
		panic(err)
	}

	decOptions := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}
	decoder, err := decOptions.DecMode()
	if err != nil {
		panic(err)
	}

	compressor, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		panic(err)
	}
	decompressor, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}

	c := Codec{
		encoder:      encoder,
		decoder:      decoder,
		compressor:   compressor,
		decompressor: decompressor,
	}

	return &c
}

// Marshal encodes and compresses a journal record.
func (c *Codec) Marshal(record interface{}) ([]byte, error) {
	data, err := c.encoder.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("could not encode record: %w", err)
	}
	return c.compressor.EncodeAll(data, nil), nil
}

// Unmarshal decompresses and decodes a journal record.
func (c *Codec) Unmarshal(compressed []byte, record interface{}) error {
	data, err := c.decompressor.DecodeAll(compressed, nil)
	if err != nil {
		return fmt.Errorf("could not decompress record: %w", err)
	}
	err = c.decoder.Unmarshal(data, record)
	if err != nil {
		return fmt.Errorf("could not decode record: %w", err)
	}
	return nil
}
