package grid

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"unsafe"
)

var hostOrder = nativeEndianness()

func nativeEndianness() binary.ByteOrder {
	var i int32 = 0x01020304
	u := unsafe.Pointer(&i)
	pb := (*byte)(u)
	b := *pb
	if b == 0x04 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// HostEncoding returns the byte order of the running host
func HostEncoding() Encoding {
	if hostOrder == binary.LittleEndian {
		return EncodingLITTLEENDIAN
	}
	return EncodingBIGENDIAN
}

// ByteOrder returns the binary.ByteOrder of the encoding
func (e Encoding) ByteOrder() binary.ByteOrder {
	if e == EncodingBIGENDIAN {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

type (
	decodeFunc func(b []byte) float64
	encodeFunc func(b []byte, v float64)
)

// decoders and encoders are indexed by value type, then by swapped (file byte order differs from the host one)
var decoders = [...][2]decodeFunc{
	ValueTypeINT16: {
		func(b []byte) float64 { return float64(int16(hostOrder.Uint16(b))) },
		func(b []byte) float64 { return float64(int16(bits.ReverseBytes16(hostOrder.Uint16(b)))) },
	},
	ValueTypeINT32: {
		func(b []byte) float64 { return float64(int32(hostOrder.Uint32(b))) },
		func(b []byte) float64 { return float64(int32(bits.ReverseBytes32(hostOrder.Uint32(b)))) },
	},
	ValueTypeFLOAT32: {
		func(b []byte) float64 { return float64(math.Float32frombits(hostOrder.Uint32(b))) },
		func(b []byte) float64 { return float64(math.Float32frombits(bits.ReverseBytes32(hostOrder.Uint32(b)))) },
	},
	ValueTypeFLOAT64: {
		func(b []byte) float64 { return math.Float64frombits(hostOrder.Uint64(b)) },
		func(b []byte) float64 { return math.Float64frombits(bits.ReverseBytes64(hostOrder.Uint64(b))) },
	},
}

var encoders = [...][2]encodeFunc{
	ValueTypeINT16: {
		func(b []byte, v float64) { hostOrder.PutUint16(b, uint16(int16(math.Round(v)))) },
		func(b []byte, v float64) { hostOrder.PutUint16(b, bits.ReverseBytes16(uint16(int16(math.Round(v))))) },
	},
	ValueTypeINT32: {
		func(b []byte, v float64) { hostOrder.PutUint32(b, uint32(int32(math.Round(v)))) },
		func(b []byte, v float64) { hostOrder.PutUint32(b, bits.ReverseBytes32(uint32(int32(math.Round(v))))) },
	},
	ValueTypeFLOAT32: {
		func(b []byte, v float64) { hostOrder.PutUint32(b, math.Float32bits(float32(v))) },
		func(b []byte, v float64) { hostOrder.PutUint32(b, bits.ReverseBytes32(math.Float32bits(float32(v)))) },
	},
	ValueTypeFLOAT64: {
		func(b []byte, v float64) { hostOrder.PutUint64(b, math.Float64bits(v)) },
		func(b []byte, v float64) { hostOrder.PutUint64(b, bits.ReverseBytes64(math.Float64bits(v))) },
	},
}

// Codec reads and writes node values of a value type in a file byte order
type Codec struct {
	Type     ValueType
	Encoding Encoding
	Swapped  bool
	decode   decodeFunc
	encode   encodeFunc
}

// NewCodec selects the native or swapped path of the value type for the encoding
func NewCodec(t ValueType, e Encoding) (Codec, error) {
	if t.Size() == 0 {
		return Codec{}, fmt.Errorf("NewCodec: invalid value type %s", t)
	}
	if e != EncodingLITTLEENDIAN && e != EncodingBIGENDIAN {
		return Codec{}, fmt.Errorf("NewCodec: invalid encoding %s", e)
	}
	swapped := e != HostEncoding()
	i := 0
	if swapped {
		i = 1
	}
	return Codec{Type: t, Encoding: e, Swapped: swapped, decode: decoders[t][i], encode: encoders[t][i]}, nil
}

// Size returns the size in bytes of a value
func (c Codec) Size() int {
	return c.Type.Size()
}

// Read decodes the value at the beginning of b
func (c Codec) Read(b []byte) float64 {
	return c.decode(b)
}

// Write encodes v at the beginning of b. Integer types round v to the nearest integer.
func (c Codec) Write(b []byte, v float64) {
	c.encode(b, v)
}

// ReadValues decodes len(dst) consecutive values
func (c Codec) ReadValues(b []byte, dst []float64) {
	size := c.Size()
	for i := range dst {
		dst[i] = c.decode(b[i*size:])
	}
}

// AppendValues encodes the values at the end of b
func (c Codec) AppendValues(b []byte, values ...float64) []byte {
	size := c.Size()
	for _, v := range values {
		n := len(b)
		b = append(b, make([]byte, size)...)
		c.encode(b[n:], v)
	}
	return b
}
