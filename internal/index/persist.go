package index

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Index file format constants.
const (
	MagicBytes      = "YIDX"
	FormatVersion   = 1
	FixedHeaderSize = 64   // fixed header size (0x40 bytes)
	ChecksumOffset  = 0x20 // checksum offset in the fixed header
	ChecksumSize    = 32   // SHA-256 checksum size

	maxPayloadSize = 100 * 1024 * 1024
)

// Flags for the .yidx format.
const (
	FlagHasFeatures uint32 = 1 << 0 // bit 0: feature vocabulary present
)

// payload is the JSON body of a .yidx file. Symbol lists are stored
// complete, reserved prefix included.
type payload struct {
	SourceSymbols  []string `json:"source_symbols"`
	TargetSymbols  []string `json:"target_symbols"`
	FeaturesOffset int32    `json:"features_offset,omitempty"`
}

// Write saves the index to path in .yidx format.
func (ix *Index) Write(path string) error {
	//nolint:gosec // G304: File path comes from user input, which is expected for index saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := ix.WriteTo(file); err != nil {
		_ = file.Close() // Best effort close on error
		return err
	}
	return file.Close()
}

// WriteTo writes the index to w in .yidx format.
func (ix *Index) WriteTo(w io.Writer) error {
	body := payload{
		SourceSymbols: ix.source.symbols,
		TargetSymbols: ix.target.symbols,
	}
	flags := uint32(0)
	if ix.hasFeatures {
		flags |= FlagHasFeatures
		body.FeaturesOffset = ix.featuresOffset
	}

	payloadJSON, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	checksum := sha256.Sum256(payloadJSON)

	fixedHeader := make([]byte, FixedHeaderSize)

	// 0x00-0x03: Magic bytes "YIDX"
	copy(fixedHeader[0:4], MagicBytes)

	// 0x04-0x07: Version
	binary.LittleEndian.PutUint32(fixedHeader[4:8], FormatVersion)

	// 0x08-0x0B: Flags
	binary.LittleEndian.PutUint32(fixedHeader[8:12], flags)

	// 0x0C-0x0F: Reserved (0)

	// 0x10-0x17: Payload size
	binary.LittleEndian.PutUint64(fixedHeader[16:24], uint64(len(payloadJSON)))

	// 0x18-0x1F: Reserved (0)

	// 0x20-0x3F: SHA-256 checksum of the payload
	copy(fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := w.Write(fixedHeader); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.Write(payloadJSON); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

// Read loads an index from a .yidx file.
func Read(path string) (*Index, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for index loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return ReadFrom(file)
}

// ReadFrom reads an index from r, verifying magic, version and
// checksum before rebuilding the symbol maps.
func ReadFrom(r io.Reader) (*Index, error) {
	fixedHeader := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixedHeader); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}
	if string(fixedHeader[0:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}

	version := binary.LittleEndian.Uint32(fixedHeader[4:8])
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	flags := binary.LittleEndian.Uint32(fixedHeader[8:12])
	payloadSize := binary.LittleEndian.Uint64(fixedHeader[16:24])
	if payloadSize > maxPayloadSize {
		return nil, ErrPayloadTooLarge
	}

	var stored [ChecksumSize]byte
	copy(stored[:], fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize])

	payloadJSON := make([]byte, payloadSize)
	if _, err := io.ReadFull(r, payloadJSON); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	if sha256.Sum256(payloadJSON) != stored {
		return nil, ErrChecksumMismatch
	}

	var body payload
	if err := json.Unmarshal(payloadJSON, &body); err != nil {
		return nil, fmt.Errorf("failed to parse payload JSON: %w", err)
	}
	return fromPayload(&body, flags)
}

// fromPayload rebuilds an Index from a decoded payload.
func fromPayload(body *payload, flags uint32) (*Index, error) {
	if err := checkReservedPrefix("source", body.SourceSymbols); err != nil {
		return nil, err
	}
	if err := checkReservedPrefix("target", body.TargetSymbols); err != nil {
		return nil, err
	}

	ix := &Index{
		source: newSymbolMapFromSymbols(body.SourceSymbols),
		target: newSymbolMapFromSymbols(body.TargetSymbols),
	}
	if flags&FlagHasFeatures != 0 {
		off := body.FeaturesOffset
		if off < NumSpecial || int(off) > len(body.SourceSymbols) {
			return nil, fmt.Errorf("features offset %d outside source vocabulary of size %d", off, len(body.SourceSymbols))
		}
		ix.featuresOffset = off
		ix.hasFeatures = true
	}
	ix.resolveSpecial()
	return ix, nil
}

// checkReservedPrefix verifies that a stored symbol list still begins
// with the seven reserved symbols.
func checkReservedPrefix(side string, symbols []string) error {
	if len(symbols) < NumSpecial {
		return fmt.Errorf("%s vocabulary holds %d symbols, want at least %d reserved", side, len(symbols), NumSpecial)
	}
	for i, want := range reservedSymbols {
		if symbols[i] != want {
			return fmt.Errorf("%s vocabulary symbol %d is %q, want reserved %q", side, i, symbols[i], want)
		}
	}
	return nil
}
