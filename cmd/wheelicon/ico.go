package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type iconDirEntry struct {
	Width       uint8
	Height      uint8
	ColorCount  uint8
	Reserved    uint8
	Planes      uint16
	BitCount    uint16
	BytesInRes  uint32
	ImageOffset uint32
}

const (
	iconDirSize      = 6
	iconDirEntrySize = 16
)

// encodeICO packs PNG images into an .ico container. Each size is stored
// as PNG data, which Windows Vista and later read directly; 256 is written
// as 0 in the one-byte width and height fields.
func encodeICO(sizes []int, pngs [][]byte) ([]byte, error) {
	if len(sizes) != len(pngs) || len(sizes) == 0 {
		return nil, fmt.Errorf("need one image per size")
	}
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.LittleEndian, iconDir{Type: 1, Count: uint16(len(pngs))}); err != nil {
		return nil, err
	}
	offset := uint32(iconDirSize + iconDirEntrySize*len(pngs))
	for i, data := range pngs {
		if sizes[i] < 1 || sizes[i] > 256 {
			return nil, fmt.Errorf("icon size %d out of range", sizes[i])
		}
		dim := uint8(sizes[i] % 256)
		e := iconDirEntry{
			Width:       dim,
			Height:      dim,
			Planes:      1,
			BitCount:    32,
			BytesInRes:  uint32(len(data)),
			ImageOffset: offset,
		}
		if err := binary.Write(buf, binary.LittleEndian, e); err != nil {
			return nil, err
		}
		offset += uint32(len(data))
	}
	for _, data := range pngs {
		buf.Write(data)
	}
	return buf.Bytes(), nil
}
