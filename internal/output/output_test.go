package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sixframe-core/orf"
	"sixframe/pkg/api"
)

func sample() []*orf.ORF {
	return []*orf.ORF{
		{Seq: []byte("MAKVLLSTG"), Num: 1, Source: "chr1", SourceDesc: "test", Start: 10, End: 36, Frame: 1, SourceFile: "a.fa"},
		{Seq: []byte("GGR"), Num: 2, Source: "chr1", Start: 90, End: 82, Frame: 5, SourceFile: "a.fa"},
	}
}

func feed(list []*orf.ORF) <-chan *orf.ORF {
	ch := make(chan *orf.ORF, len(list))
	for _, o := range list {
		ch <- o
	}
	close(ch)
	return ch
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatFASTA != "fasta" {
		t.Fatalf("output format constants changed")
	}
}

func TestTSVHeader_Stable(t *testing.T) {
	const want = "source_file\tsource\tname\tframe\tstrand\tstart\tend\tlength\tseq"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func TestStreamFASTA_Wraps(t *testing.T) {
	var buf bytes.Buffer
	if err := StreamFASTA(&buf, feed(sample()), 4); err != nil {
		t.Fatalf("fasta: %v", err)
	}
	want := ">orf1 source=chr1 coords=10..36 length=9 frame=1 desc=test\nMAKV\nLLST\nG\n" +
		">orf2 source=chr1 coords=90..82 length=3 frame=5 desc=\nGGR\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteFASTARecord_NoWrap(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	o := &orf.ORF{Seq: []byte(strings.Repeat("A", 130)), Num: 3, Source: "s", Start: 1, End: 390, Frame: 1}
	if err := WriteFASTARecord(bw, o, 0); err != nil {
		t.Fatal(err)
	}
	_ = bw.Flush()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || len(lines[1]) != 130 {
		t.Fatalf("unexpected layout: %q", buf.String())
	}
}

func TestStreamText(t *testing.T) {
	var buf bytes.Buffer
	if err := StreamText(&buf, feed(sample()), true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || lines[0] != TSVHeader {
		t.Fatalf("unexpected text output: %q", buf.String())
	}
	if lines[2] != "a.fa\tchr1\torf2\t5\t-\t90\t82\t3\tGGR" {
		t.Fatalf("row: %q", lines[2])
	}

	buf.Reset()
	_ = StreamText(&buf, feed(sample()), false)
	if strings.HasPrefix(buf.String(), "source_file") {
		t.Fatalf("header not suppressed")
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sample()); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got []api.ORFV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 2 {
		t.Fatalf("json decode failed: %v %v", err, got)
	}
	if got[1].Strand != "-" || got[1].Name != "orf2" || got[1].Length != 3 || got[0].SourceFile != "a.fa" {
		t.Fatalf("unexpected wire values: %+v", got)
	}

	var streamed bytes.Buffer
	if err := StreamJSON(&streamed, feed(sample())); err != nil {
		t.Fatal(err)
	}
	if streamed.String() != buf.String() {
		t.Fatalf("StreamJSON differs from WriteJSON:\n%s\n---\n%s", streamed.String(), buf.String())
	}
}

func TestToAPIORF_LargeCoordinates(t *testing.T) {
	const big = int64(1) << 33
	o := &orf.ORF{Seq: []byte("MK"), Num: 1, Source: "chr1", Start: big + 6, End: big + 1, Frame: 4}
	a := ToAPIORF(o)
	if a.Start != big+6 || a.End != big+1 {
		t.Fatalf("coordinates %d..%d", a.Start, a.End)
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []*orf.ORF{o}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"start": 8589934598`) {
		t.Fatalf("json:\n%s", buf.String())
	}
}
