// pkg/api/patmatch_v1.go
package api

// HitV1 is one pattern hit. Keep fields, names, and types stable.
// Add new fields only with ",omitempty".
type HitV1 struct {
	SeqName         string `json:"seqname"`
	Beg             int    `json:"beg"`
	End             int    `json:"end"`
	Count           int    `json:"count"`
	MatchingPattern string `json:"matchingPattern"`
	GeneName        string `json:"gene_name,omitempty"`
	SGDID           string `json:"sgdid,omitempty"`
	Desc            string `json:"desc,omitempty"`
	ORFs            string `json:"orfs,omitempty"` // inter-ORF datasets
	Chr             string `json:"chr,omitempty"`  // inter-ORF datasets
}

// PatmatchResponseV1 is the stable schema of a pattern search.
type PatmatchResponseV1 struct {
	Hits         []HitV1 `json:"hits"`
	UniqueHits   int     `json:"uniqueHits"`
	TotalHits    int     `json:"totalHits"`
	DownloadURL  string  `json:"downloadUrl"`
	ErrorMessage string  `json:"error_message"`

	Pattern string `json:"pattern,omitempty"` // expanded forward pattern
	Dataset string `json:"dataset,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

// SequenceV1 is a retrieved record.
type SequenceV1 struct {
	Defline string `json:"defline"`
	Seq     string `json:"seq"`
}
