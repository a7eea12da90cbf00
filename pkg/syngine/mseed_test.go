package syngine

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakemetrics/groundmotion/pkg/ground/units"
)

// buildRecord assembles a 512-byte big-endian data record with a blockette
// 1000 and the given payload.
func buildRecord(channel string, encoding, sampleCount int, payload []byte) []byte {
	rec := make([]byte, 512)

	copy(rec[0:6], "000001")
	rec[6] = 'D'
	rec[7] = ' '
	copy(rec[8:13], "SYN  ")
	copy(rec[13:15], "  ")
	copy(rec[15:18], channel)
	copy(rec[18:20], "XX")

	binary.BigEndian.PutUint16(rec[20:22], 2024) // start-time year
	binary.BigEndian.PutUint16(rec[22:24], 123)  // day of year

	binary.BigEndian.PutUint16(rec[30:32], uint16(sampleCount))
	binary.BigEndian.PutUint16(rec[32:34], 20) // rate factor: 20 Hz
	binary.BigEndian.PutUint16(rec[34:36], 1)  // rate multiplier

	rec[39] = 1                                // one blockette follows
	binary.BigEndian.PutUint16(rec[44:46], 64) // data offset
	binary.BigEndian.PutUint16(rec[46:48], 48) // first blockette offset

	binary.BigEndian.PutUint16(rec[48:50], 1000)
	binary.BigEndian.PutUint16(rec[50:52], 0) // no next blockette
	rec[52] = byte(encoding)
	rec[53] = 1 // big-endian payload
	rec[54] = 9 // record length 2^9

	copy(rec[64:], payload)
	return rec
}

func float32Payload(samples []float64) []byte {
	payload := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.BigEndian.PutUint32(payload[4*i:], math.Float32bits(float32(s)))
	}
	return payload
}

func TestDecodeFloat32Record(t *testing.T) {
	samples := []float64{0, 1, -3.5, 2.25}
	data := buildRecord("MXZ", encodingFloat32, len(samples), float32Payload(samples))

	traces, err := decodeTraces(data)
	require.NoError(t, err)
	require.Len(t, traces, 1)

	tr := traces[0]
	assert.Equal(t, "MXZ", tr.channel)
	assert.Equal(t, "Z", tr.componentCode())
	assert.Equal(t, 20.0, tr.sampleRate)
	assert.InDeltaSlice(t, samples, tr.samples, 1e-6)
}

func TestDecodeFloat64Record(t *testing.T) {
	samples := []float64{0.125, -2.5, 3.8996}
	payload := make([]byte, 8*len(samples))
	for i, s := range samples {
		binary.BigEndian.PutUint64(payload[8*i:], math.Float64bits(s))
	}
	data := buildRecord("MXR", encodingFloat64, len(samples), payload)

	traces, err := decodeTraces(data)
	require.NoError(t, err)
	require.Len(t, traces, 1)
	assert.Equal(t, samples, traces[0].samples)
}

func TestDecodeInt32Record(t *testing.T) {
	payload := make([]byte, 12)
	for i, v := range []int32{-7, 0, 123456} {
		binary.BigEndian.PutUint32(payload[4*i:], uint32(v))
	}
	data := buildRecord("MXT", encodingInt32, 3, payload)

	traces, err := decodeTraces(data)
	require.NoError(t, err)
	assert.Equal(t, []float64{-7, 0, 123456}, traces[0].samples)
}

func TestDecodeSteim1Record(t *testing.T) {
	// one frame: X0=10, Xn=12, then four byte differences [_, 1, 2, -1]
	// giving the sequence 10, 11, 13, 12
	payload := make([]byte, 64)
	ctrl := uint32(1) << (2 * (15 - 3)) // word 3 holds four int8 differences
	binary.BigEndian.PutUint32(payload[0:4], ctrl)
	binary.BigEndian.PutUint32(payload[4:8], 10)  // forward integration constant
	binary.BigEndian.PutUint32(payload[8:12], 12) // reverse integration constant
	copy(payload[12:16], []byte{0, 1, 2, 0xFF})

	data := buildRecord("MXZ", encodingSteim1, 4, payload)

	traces, err := decodeTraces(data)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 11, 13, 12}, traces[0].samples)
}

func TestDecodeSteim1IntegrityMismatch(t *testing.T) {
	payload := make([]byte, 64)
	ctrl := uint32(1) << (2 * (15 - 3))
	binary.BigEndian.PutUint32(payload[0:4], ctrl)
	binary.BigEndian.PutUint32(payload[4:8], 10)
	binary.BigEndian.PutUint32(payload[8:12], 99) // wrong reverse constant
	copy(payload[12:16], []byte{0, 1, 2, 0xFF})

	data := buildRecord("MXZ", encodingSteim1, 4, payload)

	_, err := decodeTraces(data)
	assert.Error(t, err)
}

func TestDecodeUnsupportedEncoding(t *testing.T) {
	data := buildRecord("MXZ", encodingSteim2, 4, make([]byte, 64))

	_, err := decodeTraces(data)
	require.Error(t, err)
	assert.True(t, IsUnsupportedEncoding(err))
}

func TestDecodeMultipleRecordsSameChannel(t *testing.T) {
	first := buildRecord("MXZ", encodingFloat32, 2, float32Payload([]float64{1, 2}))
	second := buildRecord("MXZ", encodingFloat32, 2, float32Payload([]float64{3, 4}))

	traces, err := decodeTraces(append(first, second...))
	require.NoError(t, err)
	require.Len(t, traces, 1)
	assert.InDeltaSlice(t, []float64{1, 2, 3, 4}, traces[0].samples, 1e-6)
}

func TestDecodeTruncatedStream(t *testing.T) {
	data := buildRecord("MXZ", encodingFloat32, 2, float32Payload([]float64{1, 2}))

	_, err := decodeTraces(data[:100])
	assert.Error(t, err)

	_, err = decodeTraces(nil)
	assert.Error(t, err)
}

func TestDecodeRecording(t *testing.T) {
	samples := map[string][]float64{
		"MXZ": {0, 1, -2, 3},
		"MXR": {4, -5, 6, -7},
		"MXT": {8, 9, -10, 11},
	}

	var data []byte
	for _, channel := range []string{"MXZ", "MXR", "MXT"} {
		data = append(data, buildRecord(channel, encodingFloat32, 4, float32Payload(samples[channel]))...)
	}

	rec, err := DecodeRecording(data, units.Velocity)
	require.NoError(t, err)

	assert.Equal(t, "ZRT", string(rec.ComponentSet()))
	assert.Equal(t, 4, rec.SampleCount())
	assert.InDelta(t, 0.05, rec.TimeDelta(), 1e-12) // 20 Hz stream

	for _, code := range []string{"Z", "R", "T"} {
		s, ok := rec.Component(code)
		require.True(t, ok, "missing component %s", code)
		assert.Equal(t, "m/s", s.Unit())
		assert.Equal(t, units.Velocity, s.GMT())
		assert.InDeltaSlice(t, samples["MX"+code], s.Amplitudes(), 1e-6)
	}
}

func TestDecodeRecordingIncompleteTriad(t *testing.T) {
	data := buildRecord("MXZ", encodingFloat32, 4, float32Payload([]float64{1, 2, 3, 4}))

	_, err := DecodeRecording(data, units.Displacement)
	assert.Error(t, err)
}

func TestSampleRateOf(t *testing.T) {
	tests := []struct {
		factor, mult int16
		want         float64
	}{
		{20, 1, 20},
		{100, 1, 100},
		{-2, 1, 0.5},  // two seconds per sample
		{10, -2, 5},   // divisor multiplier
		{-10, -2, 0.05},
		{0, 1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sampleRateOf(tt.factor, tt.mult), "factor %d mult %d", tt.factor, tt.mult)
	}
}
