// Command day16 decodes the BITS packet transmission.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/advent-go/advent"
	"github.com/advent-go/advent/parse"
)

var transmission = advent.Whole(parse.Line(parse.Recognize(parse.Many1(parse.HexDigit()))))

func main() {
	advent.Main(
		advent.PartOneE(transmission, partOne),
		advent.PartTwoE(transmission, partTwo),
	)
}

func partOne(transmission string) (int, error) {
	p, err := decode(transmission)
	if err != nil {
		return 0, err
	}
	return p.versionSum(), nil
}

func partTwo(transmission string) (uint64, error) {
	p, err := decode(transmission)
	if err != nil {
		return 0, err
	}
	return p.evaluate()
}

const literalType = 4

type packet struct {
	version    int
	typeID     int
	value      uint64
	subpackets []*packet
}

func (p *packet) versionSum() int {
	sum := p.version
	for _, sub := range p.subpackets {
		sum += sub.versionSum()
	}
	return sum
}

func (p *packet) evaluate() (uint64, error) {
	if p.typeID == literalType {
		return p.value, nil
	}
	values := make([]uint64, len(p.subpackets))
	for i, sub := range p.subpackets {
		v, err := sub.evaluate()
		if err != nil {
			return 0, err
		}
		values[i] = v
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("operator %d has no operands", p.typeID)
	}
	switch p.typeID {
	case 0:
		var sum uint64
		for _, v := range values {
			sum += v
		}
		return sum, nil
	case 1:
		product := uint64(1)
		for _, v := range values {
			product *= v
		}
		return product, nil
	case 2:
		m := values[0]
		for _, v := range values[1:] {
			m = min(m, v)
		}
		return m, nil
	case 3:
		m := values[0]
		for _, v := range values[1:] {
			m = max(m, v)
		}
		return m, nil
	}
	if len(values) != 2 {
		return 0, fmt.Errorf("comparison %d needs two operands, has %d", p.typeID, len(values))
	}
	var result bool
	switch p.typeID {
	case 5:
		result = values[0] > values[1]
	case 6:
		result = values[0] < values[1]
	case 7:
		result = values[0] == values[1]
	default:
		return 0, fmt.Errorf("unknown packet type %d", p.typeID)
	}
	if result {
		return 1, nil
	}
	return 0, nil
}

var errTruncated = errors.New("transmission ends mid-packet")

// bitReader reads big-endian bit fields.
type bitReader struct {
	data []byte
	pos  int
}

func (r *bitReader) read(n int) (uint64, error) {
	if r.pos+n > len(r.data)*8 {
		return 0, errTruncated
	}
	var v uint64
	for i := 0; i < n; i++ {
		bit := r.data[r.pos/8] >> (7 - r.pos%8) & 1
		v = v<<1 | uint64(bit)
		r.pos++
	}
	return v, nil
}

func decode(transmission string) (*packet, error) {
	data, err := hex.DecodeString(transmission)
	if err != nil {
		return nil, err
	}
	return (&bitReader{data: data}).packet()
}

func (r *bitReader) packet() (*packet, error) {
	version, err := r.read(3)
	if err != nil {
		return nil, err
	}
	typeID, err := r.read(3)
	if err != nil {
		return nil, err
	}
	p := &packet{version: int(version), typeID: int(typeID)}
	if p.typeID == literalType {
		for {
			group, err := r.read(5)
			if err != nil {
				return nil, err
			}
			p.value = p.value<<4 | group&0xf
			if group&0x10 == 0 {
				return p, nil
			}
		}
	}
	lengthType, err := r.read(1)
	if err != nil {
		return nil, err
	}
	if lengthType == 0 {
		length, err := r.read(15)
		if err != nil {
			return nil, err
		}
		end := r.pos + int(length)
		for r.pos < end {
			sub, err := r.packet()
			if err != nil {
				return nil, err
			}
			p.subpackets = append(p.subpackets, sub)
		}
		if r.pos != end {
			return nil, fmt.Errorf("subpackets overrun their length by %d bits", r.pos-end)
		}
		return p, nil
	}
	count, err := r.read(11)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < count; i++ {
		sub, err := r.packet()
		if err != nil {
			return nil, err
		}
		p.subpackets = append(p.subpackets, sub)
	}
	return p, nil
}
