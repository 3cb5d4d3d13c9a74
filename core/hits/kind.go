// core/hits/kind.go
package hits

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DatasetKind selects annotation and report layout.
type DatasetKind int

const (
	Generic    DatasetKind = iota // sequence-name rows
	ORF                           // feature rows annotated from locus.txt
	NotFeature                    // inter-ORF regions annotated from deflines
)

const (
	HeaderGeneric    = "Sequence Name\tHitNumber\tMatchPattern\tMatchStartCoord\tMatchStopCoord"
	HeaderORF        = "Feature Name\tGene Name\tHitNumber\tMatchPattern\tMatchStartCoord\tMatchStopCoord\tLocusInfo"
	HeaderNotFeature = "Chromosome\tBetweenORFtoORF\tHitNumber\tMatchPattern\tMatchStartCoord\tMatchStopCoord"
)

func (k DatasetKind) String() string {
	switch k {
	case Generic:
		return "generic"
	case ORF:
		return "orf"
	case NotFeature:
		return "notfeature"
	}
	return fmt.Sprintf("DatasetKind(%d)", int(k))
}

// Header is the report header row for the kind.
func (k DatasetKind) Header() string {
	switch k {
	case ORF:
		return HeaderORF
	case NotFeature:
		return HeaderNotFeature
	}
	return HeaderGeneric
}

// KindForDataset follows the corpus naming convention: files containing
// "Not" hold inter-ORF regions and files containing "orf_" hold features.
func KindForDataset(path string) DatasetKind {
	base := filepath.Base(path)
	switch {
	case strings.Contains(base, "Not"):
		return NotFeature
	case strings.Contains(base, "orf_"):
		return ORF
	}
	return Generic
}

// ParseKind accepts the String forms plus "auto", which returns ok=false.
func ParseKind(s string) (k DatasetKind, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Generic, false, nil
	case "generic":
		return Generic, true, nil
	case "orf":
		return ORF, true, nil
	case "notfeature", "not-feature":
		return NotFeature, true, nil
	}
	return Generic, false, fmt.Errorf("unknown dataset kind %q", s)
}
