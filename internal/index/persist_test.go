package index

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ix   *Index
	}{
		{
			name: "plain",
			ix:   New([]string{"a", "b", "c"}, []string{"x", "y"}),
		},
		{
			name: "empty vocabularies",
			ix:   New(nil, nil),
		},
		{
			name: "with features",
			ix:   NewWithFeatures([]string{"a", "b"}, []string{"[+sg]", "[+pl]"}, []string{"x"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index.yidx")
			require.NoError(t, tt.ix.Write(path))

			got, err := Read(path)
			require.NoError(t, err)

			assert.Equal(t, tt.ix.SourceVocabSize(), got.SourceVocabSize())
			assert.Equal(t, tt.ix.TargetVocabSize(), got.TargetVocabSize())
			assert.Equal(t, tt.ix.HasFeatures(), got.HasFeatures())
			assert.Equal(t, tt.ix.FeatureVocabSize(), got.FeatureVocabSize())

			wantOff, wantOK := tt.ix.FeaturesOffset()
			gotOff, gotOK := got.FeaturesOffset()
			assert.Equal(t, wantOK, gotOK)
			assert.Equal(t, wantOff, gotOff)

			assert.Equal(t, tt.ix.EndIdx(), got.EndIdx())
			assert.Equal(t, tt.ix.PadIdx(), got.PadIdx())

			// Every symbol keeps its index across the round trip.
			for i := int32(0); int(i) < tt.ix.SourceVocabSize(); i++ {
				want, err := tt.ix.SourceMap().Symbol(i)
				require.NoError(t, err)
				assert.Equal(t, i, got.SourceMap().Index(want, -1))
			}
			for i := int32(0); int(i) < tt.ix.TargetVocabSize(); i++ {
				want, err := tt.ix.TargetMap().Symbol(i)
				require.NoError(t, err)
				assert.Equal(t, i, got.TargetMap().Index(want, -1))
			}
		})
	}
}

func TestIndex_WriteToReadFrom(t *testing.T) {
	ix := NewWithFeatures([]string{"s"}, []string{"[f]"}, []string{"t"})

	var buf bytes.Buffer
	require.NoError(t, ix.WriteTo(&buf))

	got, err := ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, ix.SourceVocabSize(), got.SourceVocabSize())
	assert.True(t, got.HasFeatures())
}

func TestIndex_ReadRejectsBadMagic(t *testing.T) {
	path := writeTestIndex(t)
	patchFile(t, path, 0, []byte("XXXX"))

	_, err := Read(path)
	require.ErrorIs(t, err, ErrInvalidMagic)
}

func TestIndex_ReadRejectsUnsupportedVersion(t *testing.T) {
	path := writeTestIndex(t)
	patchFile(t, path, 4, []byte{0xFF, 0x00, 0x00, 0x00})

	_, err := Read(path)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestIndex_ReadRejectsCorruptPayload(t *testing.T) {
	path := writeTestIndex(t)

	info, err := os.Stat(path)
	require.NoError(t, err)
	patchFile(t, path, info.Size()-1, []byte{0xFF})

	_, err = Read(path)
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestIndex_ReadRejectsTruncatedFile(t *testing.T) {
	path := writeTestIndex(t)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, os.Truncate(path, info.Size()-4))

	_, err = Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read payload")
}

func TestIndex_ReadRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yidx")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read fixed header")
}

// writeTestIndex writes a small valid index file and returns its path.
func writeTestIndex(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.yidx")
	ix := New([]string{"a", "b"}, []string{"x"})
	require.NoError(t, ix.Write(path))
	return path
}

// patchFile overwrites len(data) bytes at offset.
func patchFile(t *testing.T, path string, offset int64, data []byte) {
	t.Helper()
	file, err := os.OpenFile(path, os.O_RDWR, 0o644)
	require.NoError(t, err)
	_, err = file.WriteAt(data, offset)
	require.NoError(t, err)
	require.NoError(t, file.Close())
}
