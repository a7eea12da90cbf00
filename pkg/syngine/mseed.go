package syngine

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// miniSEED data record layout constants
const (
	fixedHeaderLen   = 48
	minRecordLen     = 64
	blocketteDataLen = 1000
)

// SEED payload encoding codes
const (
	encodingInt16   = 1
	encodingInt32   = 3
	encodingFloat32 = 4
	encodingFloat64 = 5
	encodingSteim1  = 10
	encodingSteim2  = 11
)

// trace is one channel's continuous sample sequence assembled from the data
// records that share its identifier.
type trace struct {
	network    string
	station    string
	location   string
	channel    string
	sampleRate float64
	samples    []float64
}

// componentCode is the orientation letter, the last character of the channel
// code (MXZ -> Z).
func (t *trace) componentCode() string {
	if t.channel == "" {
		return ""
	}
	return t.channel[len(t.channel)-1:]
}

// decodeTraces splits a miniSEED byte stream into per-channel traces,
// preserving the order channels first appear in the stream.
func decodeTraces(data []byte) ([]*trace, error) {
	if len(data) == 0 {
		return nil, NewServiceError(ErrCodeDecodeFailed, "", "empty miniSEED stream", nil)
	}

	byKey := make(map[string]*trace)
	var order []string

	for offset := 0; offset < len(data); {
		rec, recordLen, err := decodeRecord(data[offset:])
		if err != nil {
			return nil, err
		}

		key := rec.network + "." + rec.station + "." + rec.location + "." + rec.channel
		existing, ok := byKey[key]
		if !ok {
			byKey[key] = rec
			order = append(order, key)
		} else {
			if existing.sampleRate != rec.sampleRate {
				return nil, NewServiceError(ErrCodeDecodeFailed, "", fmt.Sprintf(
					"channel %s changes sample rate mid-stream (%g to %g)",
					key, existing.sampleRate, rec.sampleRate), nil)
			}
			existing.samples = append(existing.samples, rec.samples...)
		}

		offset += recordLen
	}

	traces := make([]*trace, 0, len(order))
	for _, key := range order {
		traces = append(traces, byKey[key])
	}
	return traces, nil
}

// decodeRecord parses a single data record from the front of the buffer and
// returns it together with the record length consumed.
func decodeRecord(data []byte) (*trace, int, error) {
	if len(data) < minRecordLen {
		return nil, 0, NewServiceError(ErrCodeDecodeFailed, "", fmt.Sprintf(
			"truncated record: %d bytes left", len(data)), nil)
	}

	order, err := detectByteOrder(data)
	if err != nil {
		return nil, 0, err
	}

	sampleCount := int(order.Uint16(data[30:32]))
	rateFactor := int16(order.Uint16(data[32:34]))
	rateMult := int16(order.Uint16(data[34:36]))
	dataOffset := int(order.Uint16(data[44:46]))
	blocketteOffset := int(order.Uint16(data[46:48]))

	encoding, wordOrder, recordLen, err := readBlockette1000(data, order, blocketteOffset)
	if err != nil {
		return nil, 0, err
	}
	if recordLen > len(data) {
		return nil, 0, NewServiceError(ErrCodeDecodeFailed, "", fmt.Sprintf(
			"record length %d exceeds remaining stream (%d bytes)", recordLen, len(data)), nil)
	}
	if dataOffset < fixedHeaderLen || dataOffset >= recordLen {
		return nil, 0, NewServiceError(ErrCodeDecodeFailed, "", fmt.Sprintf(
			"data offset %d outside record of length %d", dataOffset, recordLen), nil)
	}

	var dataOrder binary.ByteOrder = binary.LittleEndian
	if wordOrder == 1 {
		dataOrder = binary.BigEndian
	}

	samples, err := decodeSamples(data[dataOffset:recordLen], dataOrder, encoding, sampleCount)
	if err != nil {
		return nil, 0, err
	}

	return &trace{
		network:    strings.TrimSpace(string(data[18:20])),
		station:    strings.TrimSpace(string(data[8:13])),
		location:   strings.TrimSpace(string(data[13:15])),
		channel:    strings.TrimSpace(string(data[15:18])),
		sampleRate: sampleRateOf(rateFactor, rateMult),
		samples:    samples,
	}, recordLen, nil
}

// detectByteOrder infers the header byte order from the start-time year
// field, the usual heuristic for headerless miniSEED streams.
func detectByteOrder(data []byte) (binary.ByteOrder, error) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		year := order.Uint16(data[20:22])
		if year >= 1900 && year <= 2100 {
			return order, nil
		}
	}
	return nil, NewServiceError(ErrCodeDecodeFailed, "",
		"cannot determine record byte order from start-time year", nil)
}

// readBlockette1000 walks the blockette chain for the data-only blockette,
// which carries the payload encoding, word order and record length.
func readBlockette1000(data []byte, order binary.ByteOrder, offset int) (encoding, wordOrder, recordLen int, err error) {
	for offset != 0 {
		if offset < fixedHeaderLen || offset+8 > len(data) {
			return 0, 0, 0, NewServiceError(ErrCodeDecodeFailed, "", fmt.Sprintf(
				"blockette offset %d outside record", offset), nil)
		}
		blocketteType := int(order.Uint16(data[offset : offset+2]))
		next := int(order.Uint16(data[offset+2 : offset+4]))

		if blocketteType == blocketteDataLen {
			encoding = int(data[offset+4])
			wordOrder = int(data[offset+5])
			recordLen = 1 << int(data[offset+6])
			return encoding, wordOrder, recordLen, nil
		}
		offset = next
	}
	return 0, 0, 0, NewServiceError(ErrCodeDecodeFailed, "",
		"record carries no data-only blockette (1000)", nil)
}

// sampleRateOf resolves the factor/multiplier pair into samples per second
func sampleRateOf(factor, mult int16) float64 {
	if factor == 0 {
		return 0
	}
	var rate float64
	if factor > 0 {
		rate = float64(factor)
	} else {
		rate = -1 / float64(factor)
	}
	switch {
	case mult > 0:
		rate *= float64(mult)
	case mult < 0:
		rate /= -float64(mult)
	}
	return rate
}

// decodeSamples reads sampleCount values from the payload in the given
// encoding. Steim-2 and the remaining SEED encodings are not produced by the
// synthetics service and are rejected with a typed error.
func decodeSamples(payload []byte, order binary.ByteOrder, encoding, sampleCount int) ([]float64, error) {
	switch encoding {
	case encodingInt16:
		return decodeFixedWidth(payload, order, sampleCount, 2, func(b []byte) float64 {
			return float64(int16(order.Uint16(b)))
		})
	case encodingInt32:
		return decodeFixedWidth(payload, order, sampleCount, 4, func(b []byte) float64 {
			return float64(int32(order.Uint32(b)))
		})
	case encodingFloat32:
		return decodeFixedWidth(payload, order, sampleCount, 4, func(b []byte) float64 {
			return float64(math.Float32frombits(order.Uint32(b)))
		})
	case encodingFloat64:
		return decodeFixedWidth(payload, order, sampleCount, 8, func(b []byte) float64 {
			return math.Float64frombits(order.Uint64(b))
		})
	case encodingSteim1:
		return decodeSteim1(payload, order, sampleCount)
	default:
		return nil, NewServiceError(ErrCodeUnsupportedEncoding, "", fmt.Sprintf(
			"unsupported payload encoding %d", encoding), nil)
	}
}

func decodeFixedWidth(payload []byte, order binary.ByteOrder, sampleCount, width int, read func([]byte) float64) ([]float64, error) {
	if len(payload) < sampleCount*width {
		return nil, NewServiceError(ErrCodeDecodeFailed, "", fmt.Sprintf(
			"payload holds %d bytes, %d samples of width %d need %d",
			len(payload), sampleCount, width, sampleCount*width), nil)
	}
	samples := make([]float64, sampleCount)
	for i := range samples {
		samples[i] = read(payload[i*width : (i+1)*width])
	}
	return samples, nil
}

// decodeSteim1 expands Steim-1 compressed frames. Each 64-byte frame starts
// with a control word of sixteen 2-bit nibbles describing the fifteen data
// words; the first frame additionally carries the forward and reverse
// integration constants in words one and two.
func decodeSteim1(payload []byte, order binary.ByteOrder, sampleCount int) ([]float64, error) {
	const frameLen = 64
	if len(payload) < frameLen {
		return nil, NewServiceError(ErrCodeDecodeFailed, "",
			"Steim-1 payload shorter than one frame", nil)
	}

	var x0, xn int32
	var diffs []int32

	for frameStart := 0; frameStart+frameLen <= len(payload); frameStart += frameLen {
		frame := payload[frameStart : frameStart+frameLen]
		ctrl := order.Uint32(frame[0:4])

		for w := 1; w < 16; w++ {
			code := (ctrl >> (2 * (15 - w))) & 3
			word := frame[4*w : 4*w+4]

			if frameStart == 0 && (w == 1 || w == 2) {
				// integration constants, not differences
				if w == 1 {
					x0 = int32(order.Uint32(word))
				} else {
					xn = int32(order.Uint32(word))
				}
				continue
			}

			switch code {
			case 0: // non-data word
			case 1:
				for i := 0; i < 4; i++ {
					diffs = append(diffs, int32(int8(word[i])))
				}
			case 2:
				for i := 0; i < 2; i++ {
					diffs = append(diffs, int32(int16(order.Uint16(word[2*i:2*i+2]))))
				}
			case 3:
				diffs = append(diffs, int32(order.Uint32(word)))
			}
		}
	}

	if len(diffs) < sampleCount {
		return nil, NewServiceError(ErrCodeDecodeFailed, "", fmt.Sprintf(
			"Steim-1 frames yield %d differences for %d samples", len(diffs), sampleCount), nil)
	}

	// The first difference links to the previous record and is discarded;
	// the forward integration constant seeds the sequence instead.
	samples := make([]float64, sampleCount)
	current := x0
	samples[0] = float64(current)
	for i := 1; i < sampleCount; i++ {
		current += diffs[i]
		samples[i] = float64(current)
	}

	if current != xn {
		return nil, NewServiceError(ErrCodeDecodeFailed, "", fmt.Sprintf(
			"Steim-1 reverse integration constant mismatch: got %d, want %d", current, xn), nil)
	}
	return samples, nil
}
