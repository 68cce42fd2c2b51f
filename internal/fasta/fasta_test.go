package fasta_test

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jjtimmons/dnaseq/internal/dna"
	"github.com/jjtimmons/dnaseq/internal/fasta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	seqs, err := fasta.Read(filepath.Join("testdata", "sequences.fa"))
	require.NoError(t, err)
	require.Len(t, seqs, 3)

	assert.Equal(t, "seq1", seqs[0].ID())
	assert.Equal(t, "first test sequence", seqs[0].Description())
	assert.Equal(t, "ATGCATGCTAGCTAGCATGCG", seqs[0].Seq())

	assert.Equal(t, "seq2", seqs[1].ID())
	assert.Equal(t, "", seqs[1].Description())
	assert.Equal(t, "ATGAATTCGGCCATGAATTC", seqs[1].Seq())

	assert.Equal(t, "seq3", seqs[2].ID())
	assert.Equal(t, "ambiguous\tbases", seqs[2].Description())
	assert.Equal(t, "NNNNACGT", seqs[2].Seq())
}

func TestRead_NotFound(t *testing.T) {
	seqs, err := fasta.Read(filepath.Join("testdata", "missing.fa"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fasta.ErrNotFound)
	assert.Nil(t, seqs)
}

func TestRead_InvalidRecord(t *testing.T) {
	seqs, err := fasta.Read(filepath.Join("testdata", "invalid.fa"))
	require.Error(t, err)
	assert.ErrorIs(t, err, dna.ErrInvalidSequence)
	assert.Contains(t, err.Error(), "bad")
	assert.Nil(t, seqs, "no partial result on a bad record")
}

func TestRead_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequences.fa.gz")

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(">gz\nACGT\nACGT\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	seqs, err := fasta.Read(path)
	require.NoError(t, err)
	require.Len(t, seqs, 1)
	assert.Equal(t, "ACGTACGT", seqs[0].Seq())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty input", "", fasta.ErrFormat},
		{"only blank lines", "\n\n  \n", fasta.ErrFormat},
		{"sequence before header", "ATGC\n>seq\nATGC\n", fasta.ErrFormat},
		{"header without id", ">\nATGC\n", fasta.ErrFormat},
		{"record without sequence", ">empty\n>full\nATGC\n", dna.ErrInvalidSequence},
		{"last record without sequence", ">full\nATGC\n>empty\n", dna.ErrInvalidSequence},
		{"invalid bases", ">seq\nATGX\n", dna.ErrInvalidSequence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seqs, err := fasta.Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, seqs)
		})
	}
}

func TestParse_CRLF(t *testing.T) {
	seqs, err := fasta.Parse(strings.NewReader(">win dows\r\nACGT\r\nTT\r\n"))
	require.NoError(t, err)
	require.Len(t, seqs, 1)
	assert.Equal(t, "win", seqs[0].ID())
	assert.Equal(t, "dows", seqs[0].Description())
	assert.Equal(t, "ACGTTT", seqs[0].Seq())
}

func TestEncode(t *testing.T) {
	a, err := dna.New("ATGCATGCAT", dna.WithID("a"), dna.WithDescription("ten bases"))
	require.NoError(t, err)
	b, err := dna.New("GGCC", dna.WithID("b"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		width int
		want  string
	}{
		{
			"wrap at 4",
			4,
			">a ten bases\nATGC\nATGC\nAT\n>b\nGGCC\n",
		},
		{
			"default width",
			0,
			">a ten bases\nATGCATGCAT\n>b\nGGCC\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, fasta.Encode(&buf, []*dna.Sequence{a, b}, tt.width))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestEncode_DefaultWidthWraps(t *testing.T) {
	s, err := dna.New(strings.Repeat("ACGT", 50))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fasta.Encode(&buf, []*dna.Sequence{s}, -1))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, ">unnamed", lines[0])
	assert.Len(t, lines[1], fasta.DefaultWidth)
	assert.Len(t, lines[2], fasta.DefaultWidth)
	assert.Len(t, lines[3], 200-2*fasta.DefaultWidth)
}

func TestWrite_RoundTrip(t *testing.T) {
	in, err := fasta.Read(filepath.Join("testdata", "sequences.fa"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.fa")
	require.NoError(t, fasta.Write(path, in, 5))

	out, err := fasta.Read(path)
	require.NoError(t, err)
	require.Len(t, out, len(in))

	for i := range in {
		assert.True(t, in[i].Equal(out[i]), "%s != %s", in[i].Describe(), out[i].Describe())
		assert.Equal(t, in[i].ID(), out[i].ID())
		assert.Equal(t, in[i].Description(), out[i].Description())
	}
}
