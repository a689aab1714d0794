// pkg/api/orf_v1.go
package api

// ORFV1 is the stable JSON/JSONL schema for one translated ORF.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ORFV1 struct {
	Name       string `json:"name"` // "orf<num>"
	Num        int64  `json:"num"`
	Source     string `json:"source"`
	SourceDesc string `json:"source_desc,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
	Start      int64  `json:"start"` // 1-based; start > end on the reverse strand
	End        int64  `json:"end"`
	Frame      int    `json:"frame"`  // 1..6
	Strand     string `json:"strand"` // "+" | "-"
	Length     int    `json:"length"` // amino acids
	Seq        string `json:"seq"`
}
