// pkg/api/restriction_v1.go
package api

// EnzymeDataV1 is the cut map of one enzyme. List fields are ", " joined,
// matching the tabular report.
type EnzymeDataV1 struct {
	CutSiteOnWatsonStrand   string `json:"cut_site_on_watson_strand"`
	CutSiteOnCrickStrand    string `json:"cut_site_on_crick_strand"`
	FragmentSize            string `json:"fragment_size"`
	FragmentSizeInRealOrder string `json:"fragment_size_in_real_order"`
	Offset                  string `json:"offset"`
	Overhang                string `json:"overhang"`
	RecognitionSeq          string `json:"recognition_seq"`
	EnzymeType              string `json:"enzyme_type"`
}

// RestrictionResponseV1 is the stable schema of a restriction map.
type RestrictionResponseV1 struct {
	Data              map[string]EnzymeDataV1 `json:"data"`
	SeqName           string                  `json:"seqName"`
	ChrCoords         string                  `json:"chrCoords"`
	SeqLength         int                     `json:"seqLength"`
	NotCutEnzyme      []string                `json:"notCutEnzyme"`
	DownloadURL       string                  `json:"downloadUrl"`
	DownloadURLNotCut string                  `json:"downloadUrl4notCutEnzyme"`
	Error             string                  `json:"ERROR,omitempty"`
}

// EnzymeLineV1 is one JSONL record of a restriction map.
type EnzymeLineV1 struct {
	Enzyme string `json:"enzyme"`
	EnzymeDataV1
	Cuts int `json:"number_of_cuts"`
}
