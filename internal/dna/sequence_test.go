package dna

import (
	"errors"
	"strings"
	"testing"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"all bases", "ATGCN", true},
		{"lowercase", "atgcn", true},
		{"mixed case", "AtGc", true},
		{"empty", "", false},
		{"uracil", "AUGC", false},
		{"unknown symbol", "ATGX", false},
		{"inner whitespace", "AT GC", false},
		{"digits", "ATG1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.text); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	type args struct {
		text string
		opts []Option
	}
	tests := []struct {
		name            string
		args            args
		wantSeq         string
		wantID          string
		wantDescription string
		wantErr         bool
	}{
		{
			"defaults",
			args{text: "ATGCATGC"},
			"ATGCATGC",
			"unnamed",
			"",
			false,
		},
		{
			"canonicalize case and surrounding whitespace",
			args{text: "  atgcNn\n", opts: []Option{WithID("seq1"), WithDescription("my sequence")}},
			"ATGCNN",
			"seq1",
			"my sequence",
			false,
		},
		{
			"fail on invalid bases",
			args{text: "ATGCUX"},
			"",
			"",
			"",
			true,
		},
		{
			"fail on empty",
			args{text: ""},
			"",
			"",
			"",
			true,
		},
		{
			"fail on whitespace only",
			args{text: " \t\n"},
			"",
			"",
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.args.text, tt.args.opts...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSequence) {
					t.Errorf("New() error = %v, want ErrInvalidSequence", err)
				}
				if got != nil {
					t.Errorf("New() = %v, want nil on error", got)
				}
				return
			}

			if got.Seq() != tt.wantSeq {
				t.Errorf("New().Seq() = %v, want %v", got.Seq(), tt.wantSeq)
			}
			if got.ID() != tt.wantID {
				t.Errorf("New().ID() = %v, want %v", got.ID(), tt.wantID)
			}
			if got.Description() != tt.wantDescription {
				t.Errorf("New().Description() = %v, want %v", got.Description(), tt.wantDescription)
			}
			if got.Len() != len(tt.wantSeq) {
				t.Errorf("New().Len() = %d, want %d", got.Len(), len(tt.wantSeq))
			}
		})
	}
}

func TestSequence_String(t *testing.T) {
	s, _ := New("ATGCATGC", WithID("test1"))

	if got, want := s.String(), "DNASequence(id='test1', length=8)"; got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
	if got, want := s.Describe(), "DNASequence(id='test1', seq='ATGCATGC')"; got != want {
		t.Errorf("Describe() = %v, want %v", got, want)
	}

	long, _ := New(strings.Repeat("A", 60))
	want := "DNASequence(id='unnamed', seq='" + strings.Repeat("A", 50) + "...')"
	if got := long.Describe(); got != want {
		t.Errorf("Describe() = %v, want %v", got, want)
	}
}

func TestSequence_At(t *testing.T) {
	s, _ := New("ATGC")

	tests := []struct {
		name    string
		index   int
		want    byte
		wantErr bool
	}{
		{"first", 0, 'A', false},
		{"last", 3, 'C', false},
		{"past end", 4, 0, true},
		{"negative", -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.At(tt.index)
			if (err != nil) != tt.wantErr {
				t.Fatalf("At(%d) error = %v, wantErr %v", tt.index, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("At(%d) error = %v, want ErrOutOfBounds", tt.index, err)
			}
			if got != tt.want {
				t.Errorf("At(%d) = %c, want %c", tt.index, got, tt.want)
			}
		})
	}
}

func TestSequence_Slice(t *testing.T) {
	s, _ := New("ATGCATGC", WithID("test1"), WithDescription("parent"))

	tests := []struct {
		name    string
		start   int
		end     int
		wantSeq string
		wantID  string
		wantErr error
	}{
		{"prefix", 0, 4, "ATGC", "test1_slice_4", nil},
		{"middle", 2, 5, "GCA", "test1_slice_3", nil},
		{"whole", 0, 8, "ATGCATGC", "test1_slice_8", nil},
		{"end past length", 4, 9, "", "", ErrOutOfBounds},
		{"negative start", -1, 3, "", "", ErrOutOfBounds},
		{"start after end", 5, 2, "", "", ErrOutOfBounds},
		{"empty range", 3, 3, "", "", ErrInvalidSequence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Slice(tt.start, tt.end)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Slice(%d, %d) error = %v, want %v", tt.start, tt.end, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Slice(%d, %d) unexpected error: %v", tt.start, tt.end, err)
			}

			if got.Seq() != tt.wantSeq {
				t.Errorf("Slice(%d, %d).Seq() = %v, want %v", tt.start, tt.end, got.Seq(), tt.wantSeq)
			}
			if got.ID() != tt.wantID {
				t.Errorf("Slice(%d, %d).ID() = %v, want %v", tt.start, tt.end, got.ID(), tt.wantID)
			}
			if got.Description() != "" {
				t.Errorf("Slice(%d, %d).Description() = %q, want empty", tt.start, tt.end, got.Description())
			}
		})
	}

	// the parent is untouched
	if s.Seq() != "ATGCATGC" || s.ID() != "test1" || s.Description() != "parent" {
		t.Errorf("Slice() mutated its parent: %s", s.Describe())
	}
}

func TestSequence_Equal(t *testing.T) {
	a, _ := New("ATGC", WithID("a"), WithDescription("first"))
	b, _ := New("atgc", WithID("b"))
	c, _ := New("ATGG", WithID("a"))

	if !a.Equal(b) {
		t.Errorf("%s should equal %s", a.Describe(), b.Describe())
	}
	if a.Equal(c) {
		t.Errorf("%s should not equal %s", a.Describe(), c.Describe())
	}
	if a.Equal(nil) {
		t.Error("a sequence should not equal nil")
	}
}
