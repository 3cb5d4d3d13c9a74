// internal/output/restrict.go
package output

import (
	"strconv"

	"patmatch-core/restrict"
	"patmatch/pkg/api"
)

// ToAPIEnzyme converts one enzyme cut map to the wire schema (v1).
func ToAPIEnzyme(r restrict.EnzymeResult) api.EnzymeDataV1 {
	return api.EnzymeDataV1{
		CutSiteOnWatsonStrand:   restrict.JoinInts(r.Watson),
		CutSiteOnCrickStrand:    restrict.JoinInts(r.Crick),
		FragmentSize:            restrict.JoinInts(r.Fragments.Sorted),
		FragmentSizeInRealOrder: restrict.JoinInts(r.Fragments.Ordered),
		Offset:                  strconv.Itoa(r.Offset),
		Overhang:                strconv.Itoa(r.Overhang),
		RecognitionSeq:          r.Site,
		EnzymeType:              r.Type,
	}
}

// ToAPIEnzymeLine is the JSONL form of one enzyme.
func ToAPIEnzymeLine(r restrict.EnzymeResult) api.EnzymeLineV1 {
	return api.EnzymeLineV1{Enzyme: r.Name, EnzymeDataV1: ToAPIEnzyme(r), Cuts: r.Cuts()}
}

// Downloads names the report files of a restriction map.
type Downloads struct {
	CutSites string
	NotCut   string
}

// ToAPIRestriction builds the restriction-map response.
func ToAPIRestriction(seq restrict.Sequence, res *restrict.Result, dl Downloads, errMsg string) api.RestrictionResponseV1 {
	out := api.RestrictionResponseV1{
		Data:              make(map[string]api.EnzymeDataV1, len(res.Enzymes)),
		SeqName:           seq.Name,
		ChrCoords:         seq.ChrCoords,
		SeqLength:         res.SeqLen,
		NotCutEnzyme:      append([]string{}, res.NotCut...),
		DownloadURL:       dl.CutSites,
		DownloadURLNotCut: dl.NotCut,
		Error:             errMsg,
	}
	for _, e := range res.Enzymes {
		out.Data[e.Name] = ToAPIEnzyme(e)
	}
	return out
}
